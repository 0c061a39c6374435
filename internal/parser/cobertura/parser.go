package cobertura

import (
	"encoding/xml"
	"io"
	"log/slog"
	"strings"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
)

// CoberturaParser implements the parser.IParser interface for Cobertura XML reports.
type CoberturaParser struct {
}

// NewCoberturaParser creates a new CoberturaParser.
func NewCoberturaParser() parser.IParser {
	return &CoberturaParser{}
}

func init() {
	parser.RegisterParser(NewCoberturaParser())
}

// Name returns the name of the parser.
func (cp *CoberturaParser) Name() string {
	return "Cobertura"
}

func (cp *CoberturaParser) Format() parser.Format {
	return parser.FormatCobertura
}

// SupportsContent checks that the document element is <coverage> and that
// it has a <packages> section, which the generic line coverage XML lacks.
func (cp *CoberturaParser) SupportsContent(content string) bool {
	if !strings.Contains(content, "<packages") {
		return false
	}
	decoder := xml.NewDecoder(strings.NewReader(content))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false
		}
		if se, ok := token.(xml.StartElement); ok {
			return se.Name.Local == "coverage"
		}
	}
	return false
}

// Parse processes the Cobertura XML and transforms it into the common
// coverage model.
func (cp *CoberturaParser) Parse(content string, opts parser.Options) (model.CoverageMap, error) {
	if !cp.SupportsContent(content) {
		return nil, parser.InvalidFormatError(cp)
	}

	var rawReport CoberturaRoot
	if err := xml.Unmarshal([]byte(content), &rawReport); err != nil {
		return nil, parser.NewParseError(cp.Format(), err)
	}
	if len(rawReport.Sources.Source) > 0 {
		slog.Debug("Cobertura report declares source directories.", "sources", rawReport.Sources.Source)
	}

	orchestrator := newProcessingOrchestrator(opts)
	return orchestrator.processPackages(rawReport.Packages.Package), nil
}
