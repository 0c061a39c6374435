// Package llvmcov reads the JSON export of llvm-cov.
package llvmcov

import (
	"encoding/json"
	"strings"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/utils"
)

const signature = "llvm.coverage.json.export"

// LLVMCovParser implements parser.IParser for llvm-cov JSON exports.
type LLVMCovParser struct{}

// NewLLVMCovParser creates a new LLVMCovParser.
func NewLLVMCovParser() parser.IParser {
	return &LLVMCovParser{}
}

func init() {
	parser.RegisterParser(NewLLVMCovParser())
}

func (p *LLVMCovParser) Name() string { return "llvm-cov" }

func (p *LLVMCovParser) Format() parser.Format { return parser.FormatLLVMCov }

func (p *LLVMCovParser) SupportsContent(content string) bool {
	return strings.Contains(content, signature)
}

// Parse expands every file's segments into line hits.
func (p *LLVMCovParser) Parse(content string, opts parser.Options) (model.CoverageMap, error) {
	if !p.SupportsContent(content) {
		return nil, parser.InvalidFormatError(p)
	}

	var export exportData
	if err := json.Unmarshal([]byte(content), &export); err != nil {
		return nil, parser.NewParseError(p.Format(), err)
	}

	result := make(model.CoverageMap)
	for _, d := range export.Data {
		for _, f := range d.Files {
			fc := result.File(utils.NormalizePath(f.Filename, opts.CaseInsensitive))
			applySegments(fc, f.Segments)
		}
	}
	return result, nil
}

// applySegments assigns counts from a line-ordered segment list. A segment
// with a count covers its own line through the next segment's line,
// inclusive; the last segment covers only its own line. Segments without a
// count are skipped, and later segments overwrite earlier ones.
func applySegments(fc *model.FileCoverage, segments []segment) {
	for i, seg := range segments {
		if !seg.HasCount {
			continue
		}
		if i < len(segments)-1 {
			fc.SetRange(seg.Line, segments[i+1].Line, seg.Count)
		} else {
			fc.SetHits(seg.Line, seg.Count)
		}
	}
}
