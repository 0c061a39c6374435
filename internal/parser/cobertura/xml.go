package cobertura

import "encoding/xml"

// CoberturaRoot is the <coverage> element of a Cobertura report. Only the
// parts needed for line coverage are decoded.
type CoberturaRoot struct {
	XMLName   xml.Name    `xml:"coverage"`
	Timestamp string      `xml:"timestamp,attr"`
	Sources   SourcesXML  `xml:"sources"`
	Packages  PackagesXML `xml:"packages"`
}

type SourcesXML struct {
	Source []string `xml:"source"`
}

type PackagesXML struct {
	Package []PackageXML `xml:"package"`
}

type PackageXML struct {
	Name    string     `xml:"name,attr"`
	Classes ClassesXML `xml:"classes"`
}

type ClassesXML struct {
	Class []ClassXML `xml:"class"`
}

type ClassXML struct {
	Name     string     `xml:"name,attr"`
	Filename string     `xml:"filename,attr"`
	Methods  MethodsXML `xml:"methods"`
	Lines    LinesXML   `xml:"lines"`
}

type MethodsXML struct {
	Method []MethodXML `xml:"method"`
}

type MethodXML struct {
	Name  string   `xml:"name,attr"`
	Lines LinesXML `xml:"lines"`
}

type LinesXML struct {
	Line []LineXML `xml:"line"`
}

type LineXML struct {
	Number string `xml:"number,attr"`
	Hits   string `xml:"hits,attr"`
	Branch string `xml:"branch,attr"`
}
