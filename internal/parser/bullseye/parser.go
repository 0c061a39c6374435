// Package bullseye reads BullseyeCoverage XML (covxml) reports.
package bullseye

import (
	"encoding/xml"
	"strings"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/utils"
)

const signature = "BullseyeCoverage"

type coverageXML struct {
	XMLName xml.Name    `xml:"BullseyeCoverage"`
	Dir     string      `xml:"dir,attr"`
	Folders []folderXML `xml:"folder"`
	Sources []srcXML    `xml:"src"`
}

type folderXML struct {
	Name    string      `xml:"name,attr"`
	Folders []folderXML `xml:"folder"`
	Sources []srcXML    `xml:"src"`
}

type srcXML struct {
	Name      string  `xml:"name,attr"`
	Functions []fnXML `xml:"fn"`
	Probes    []probe `xml:"probe"`
}

type fnXML struct {
	Name   string  `xml:"name,attr"`
	Probes []probe `xml:"probe"`
}

// probe is a function, decision or condition measurement point. Event is
// "none" when the probe never fired.
type probe struct {
	Line  string `xml:"line,attr"`
	Kind  string `xml:"kind,attr"`
	Event string `xml:"event,attr"`
}

func (p probe) covered() bool {
	return p.Event != "" && p.Event != "none"
}

// BullseyeParser implements parser.IParser for BullseyeCoverage XML.
type BullseyeParser struct{}

// NewBullseyeParser creates a new BullseyeParser.
func NewBullseyeParser() parser.IParser {
	return &BullseyeParser{}
}

func init() {
	parser.RegisterParser(NewBullseyeParser())
}

func (p *BullseyeParser) Name() string { return "Bullseye" }

func (p *BullseyeParser) Format() parser.Format { return parser.FormatBullseye }

func (p *BullseyeParser) SupportsContent(content string) bool {
	return strings.Contains(content, signature)
}

// Parse records every probed line. A line is covered (hits 1) when any of
// its probes fired.
func (p *BullseyeParser) Parse(content string, opts parser.Options) (model.CoverageMap, error) {
	if !p.SupportsContent(content) {
		return nil, parser.InvalidFormatError(p)
	}

	var report coverageXML
	if err := xml.Unmarshal([]byte(content), &report); err != nil {
		return nil, parser.NewParseError(p.Format(), err)
	}

	w := &walker{result: make(model.CoverageMap), opts: opts}
	w.sources([]string{report.Dir}, report.Sources)
	w.folders([]string{report.Dir}, report.Folders)
	return w.result, nil
}

type walker struct {
	result model.CoverageMap
	opts   parser.Options
}

func (w *walker) folders(parents []string, folders []folderXML) {
	for _, f := range folders {
		dir := append(append([]string(nil), parents...), f.Name)
		w.sources(dir, f.Sources)
		w.folders(dir, f.Folders)
	}
}

func (w *walker) sources(dir []string, sources []srcXML) {
	for _, src := range sources {
		path := utils.JoinReportPath(append(append([]string(nil), dir...), src.Name)...)
		fc := w.result.File(utils.NormalizePath(path, w.opts.CaseInsensitive))
		probes := append([]probe(nil), src.Probes...)
		for _, fn := range src.Functions {
			probes = append(probes, fn.Probes...)
		}
		for _, pr := range probes {
			line := utils.ParseLargeInteger(pr.Line, 0)
			hits := 0
			if pr.covered() {
				hits = 1
			}
			if existing, ok := fc.LineMap[line]; ok && existing.Hits > hits {
				continue
			}
			fc.SetHits(line, hits)
		}
	}
}
