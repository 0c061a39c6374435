// Package jsoncov reads statement-map JSON reports, the format written by
// Istanbul-style JavaScript instrumenters.
package jsoncov

import (
	"encoding/json"
	"strings"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/utils"
)

const signature = "statementMap"

// JSONParser implements parser.IParser for statement-map JSON reports.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser.
func NewJSONParser() parser.IParser {
	return &JSONParser{}
}

func init() {
	parser.RegisterParser(NewJSONParser())
}

func (p *JSONParser) Name() string { return "JSON" }

func (p *JSONParser) Format() parser.Format { return parser.FormatJSON }

// SupportsContent checks for the statementMap key.
func (p *JSONParser) SupportsContent(content string) bool {
	return strings.Contains(content, signature)
}

// Parse builds the line map of every file. Statements are applied in id
// order and a later statement overwrites earlier ones on shared lines.
func (p *JSONParser) Parse(content string, opts parser.Options) (model.CoverageMap, error) {
	if !p.SupportsContent(content) {
		return nil, parser.InvalidFormatError(p)
	}

	var data coverageMapData
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, parser.NewParseError(p.Format(), err)
	}

	data, err := toSourceCoverage(data)
	if err != nil {
		return nil, err
	}

	result := make(model.CoverageMap)
	for _, key := range data.sortedKeys() {
		fileCov := data[key]
		if fileCov == nil {
			continue
		}
		path := fileCov.Path
		if path == "" {
			path = key
		}
		fc := result.File(utils.NormalizePath(path, opts.CaseInsensitive))
		for _, id := range sortedStatementIDs(fileCov.StatementMap) {
			startLine, endLine := lineSpan(fileCov.StatementMap[id])
			fc.SetRange(startLine, endLine, fileCov.S[id])
		}
	}
	return result, nil
}

// lineSpan converts a statement range to the inclusive span of lines it
// covers. A column-anchored start belongs to the following line and a
// column-anchored end to the preceding one.
func lineSpan(r statementRange) (int, int) {
	startLine := r.Start.Line
	if r.Start.hasColumn() {
		startLine++
	}
	endLine := r.End.Line
	if r.End.hasColumn() {
		endLine--
	}
	return startLine, endLine
}
