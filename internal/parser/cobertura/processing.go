package cobertura

import (
	"log/slog"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/utils"
)

// processingOrchestrator holds state for a single parsing operation.
type processingOrchestrator struct {
	opts   parser.Options
	result model.CoverageMap
}

func newProcessingOrchestrator(opts parser.Options) *processingOrchestrator {
	return &processingOrchestrator{
		opts:   opts,
		result: make(model.CoverageMap),
	}
}

// processPackages is the entry point for the orchestrator.
func (o *processingOrchestrator) processPackages(packages []PackageXML) model.CoverageMap {
	for _, pkgXML := range packages {
		for filePath, fragments := range o.groupClassFragmentsByFile(pkgXML.Classes.Class) {
			o.processFile(filePath, fragments)
		}
	}
	return o.result
}

// groupClassFragmentsByFile groups <class> elements by their filename
// attribute. Partial and nested classes put several fragments in one file.
func (o *processingOrchestrator) groupClassFragmentsByFile(classes []ClassXML) map[string][]ClassXML {
	byFile := make(map[string][]ClassXML)
	for _, classXML := range classes {
		if classXML.Filename == "" {
			slog.Warn("Cobertura class has no filename, skipping.", "class", classXML.Name)
			continue
		}
		byFile[classXML.Filename] = append(byFile[classXML.Filename], classXML)
	}
	return byFile
}

// processFile merges the line hits of all fragments of one file. A line
// reported by several fragments accumulates their hits.
func (o *processingOrchestrator) processFile(filePath string, fragments []ClassXML) {
	lineHits := o.mergeLineData(fragments)
	fc := o.result.File(utils.NormalizePath(filePath, o.opts.CaseInsensitive))
	for lineNumber, hits := range lineHits {
		if existing, ok := fc.LineMap[lineNumber]; ok {
			// Same file listed under another package.
			hits = existing.Hits + hits
		}
		fc.SetHits(lineNumber, hits)
	}
}

func (o *processingOrchestrator) mergeLineData(fragments []ClassXML) map[int]int {
	lineHits := make(map[int]int)
	for _, fragment := range fragments {
		for _, lineXML := range fragmentLines(fragment) {
			lineNumber := utils.ParseLargeInteger(lineXML.Number, 0)
			if lineNumber < 1 {
				continue
			}
			lineHits[lineNumber] += utils.ParseHits(lineXML.Hits)
		}
	}
	return lineHits
}

// fragmentLines returns the class-level lines of a fragment. Some
// generators only list lines under <methods>; those are used when the class
// has none of its own. Method lines repeat class lines otherwise.
func fragmentLines(fragment ClassXML) []LineXML {
	if len(fragment.Lines.Line) > 0 {
		return fragment.Lines.Line
	}
	var lines []LineXML
	seen := make(map[string]struct{})
	for _, m := range fragment.Methods.Method {
		for _, l := range m.Lines.Line {
			if _, dup := seen[l.Number]; dup {
				continue
			}
			seen[l.Number] = struct{}{}
			lines = append(lines, l)
		}
	}
	return lines
}
