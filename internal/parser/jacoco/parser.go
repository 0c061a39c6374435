// Package jacoco reads JaCoCo XML reports.
package jacoco

import (
	"encoding/xml"
	"strings"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/utils"
)

type reportXML struct {
	XMLName  xml.Name     `xml:"report"`
	Groups   []groupXML   `xml:"group"`
	Packages []packageXML `xml:"package"`
}

// groupXML is a report group; multi-module builds nest them.
type groupXML struct {
	Name     string       `xml:"name,attr"`
	Groups   []groupXML   `xml:"group"`
	Packages []packageXML `xml:"package"`
}

type packageXML struct {
	Name        string          `xml:"name,attr"`
	SourceFiles []sourceFileXML `xml:"sourcefile"`
}

type sourceFileXML struct {
	Name  string    `xml:"name,attr"`
	Lines []lineXML `xml:"line"`
}

// lineXML carries missed/covered instruction (mi/ci) and branch (mb/cb)
// counters for one line.
type lineXML struct {
	Nr string `xml:"nr,attr"`
	MI string `xml:"mi,attr"`
	CI string `xml:"ci,attr"`
	MB string `xml:"mb,attr"`
	CB string `xml:"cb,attr"`
}

// JacocoParser implements parser.IParser for JaCoCo XML reports.
type JacocoParser struct{}

// NewJacocoParser creates a new JacocoParser.
func NewJacocoParser() parser.IParser {
	return &JacocoParser{}
}

func init() {
	parser.RegisterParser(NewJacocoParser())
}

func (p *JacocoParser) Name() string { return "JaCoCo" }

func (p *JacocoParser) Format() parser.Format { return parser.FormatJaCoCo }

func (p *JacocoParser) SupportsContent(content string) bool {
	return strings.Contains(content, "<report") && strings.Contains(content, "<sourcefile")
}

// Parse keys files by package path and source file name. JaCoCo has no
// execution counts, so a line with covered instructions gets hits 1.
func (p *JacocoParser) Parse(content string, opts parser.Options) (model.CoverageMap, error) {
	if !p.SupportsContent(content) {
		return nil, parser.InvalidFormatError(p)
	}

	var report reportXML
	if err := xml.Unmarshal([]byte(content), &report); err != nil {
		return nil, parser.NewParseError(p.Format(), err)
	}

	result := make(model.CoverageMap)
	p.processPackages(result, report.Packages, opts)
	p.processGroups(result, report.Groups, opts)
	return result, nil
}

func (p *JacocoParser) processGroups(result model.CoverageMap, groups []groupXML, opts parser.Options) {
	for _, g := range groups {
		p.processPackages(result, g.Packages, opts)
		p.processGroups(result, g.Groups, opts)
	}
}

func (p *JacocoParser) processPackages(result model.CoverageMap, packages []packageXML, opts parser.Options) {
	for _, pkg := range packages {
		for _, sf := range pkg.SourceFiles {
			path := utils.JoinReportPath(pkg.Name, sf.Name)
			fc := result.File(utils.NormalizePath(path, opts.CaseInsensitive))
			for _, l := range sf.Lines {
				hits := 0
				if utils.ParseHits(l.CI) > 0 {
					hits = 1
				}
				fc.SetHits(utils.ParseLargeInteger(l.Nr, 0), hits)
			}
		}
	}
}
