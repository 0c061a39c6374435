// Package xccov reads Xcode coverage converted to the generic line coverage
// XML (`<coverage><file path><lineToCover lineNumber covered/>`).
package xccov

import (
	"encoding/xml"
	"strings"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/utils"
)

const signature = "lineToCover"

type coverageXML struct {
	XMLName xml.Name  `xml:"coverage"`
	Files   []fileXML `xml:"file"`
}

type fileXML struct {
	Path  string    `xml:"path,attr"`
	Lines []lineXML `xml:"lineToCover"`
}

type lineXML struct {
	LineNumber string `xml:"lineNumber,attr"`
	Covered    string `xml:"covered,attr"`
}

// XccovParser implements parser.IParser for xccov line coverage XML.
type XccovParser struct{}

// NewXccovParser creates a new XccovParser.
func NewXccovParser() parser.IParser {
	return &XccovParser{}
}

func init() {
	parser.RegisterParser(NewXccovParser())
}

func (p *XccovParser) Name() string { return "Xccov" }

func (p *XccovParser) Format() parser.Format { return parser.FormatXccov }

func (p *XccovParser) SupportsContent(content string) bool {
	return strings.Contains(content, signature)
}

// Parse records hits 1 for covered lines and 0 for the others.
func (p *XccovParser) Parse(content string, opts parser.Options) (model.CoverageMap, error) {
	if !p.SupportsContent(content) {
		return nil, parser.InvalidFormatError(p)
	}

	var report coverageXML
	if err := xml.Unmarshal([]byte(content), &report); err != nil {
		return nil, parser.NewParseError(p.Format(), err)
	}

	result := make(model.CoverageMap)
	for _, f := range report.Files {
		fc := result.File(utils.NormalizePath(f.Path, opts.CaseInsensitive))
		for _, l := range f.Lines {
			hits := 0
			if l.Covered == "true" {
				hits = 1
			}
			fc.SetHits(utils.ParseLargeInteger(l.LineNumber, 0), hits)
		}
	}
	return result, nil
}
