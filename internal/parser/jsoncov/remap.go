package jsoncov

import (
	"fmt"
	"log/slog"

	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/sourcemap"
	"github.com/IgorBayerl/unicov/internal/utils"
)

// toSourceCoverage maps a report taken on generated code back onto the
// original sources. Whether a report needs remapping is decided once, from
// its first file record: a report is assumed to be either entirely mapped or
// entirely source-level.
func toSourceCoverage(data coverageMapData) (coverageMapData, error) {
	keys := data.sortedKeys()
	if len(keys) == 0 {
		return data, nil
	}
	sample := data[keys[0]]
	if sample == nil || !sample.hasSourceMap() {
		return data, nil
	}

	mapped := newMappedReport()
	for _, key := range keys {
		fileCov := data[key]
		if fileCov == nil {
			continue
		}
		if !fileCov.hasSourceMap() {
			slog.Debug("File has no source map, keeping generated positions.", "file", key)
			mapped.keep(key, fileCov)
			continue
		}
		resolver, err := sourcemap.New(fileCov.InputSourceMap)
		if err != nil {
			return nil, &parser.ParseError{Format: parser.FormatJSON, Path: key, Err: err}
		}
		generated := fileCov.Path
		if generated == "" {
			generated = key
		}
		dropped := 0
		for _, id := range sortedStatementIDs(fileCov.StatementMap) {
			if !mapped.addStatement(resolver, generated, fileCov.StatementMap[id], fileCov.S[id]) {
				dropped++
			}
		}
		if dropped > 0 {
			slog.Debug("Dropped statements without an original position.", "file", generated, "count", dropped)
		}
	}
	return mapped.data, nil
}

type mappedReport struct {
	data coverageMapData
	// index maps file -> range key -> statement id so repeated ranges
	// accumulate hits.
	index map[string]map[string]string
}

func newMappedReport() *mappedReport {
	return &mappedReport{
		data:  make(coverageMapData),
		index: make(map[string]map[string]string),
	}
}

// keep copies a record that has no source map into the report, merging it
// with statements already mapped onto the same path.
func (m *mappedReport) keep(key string, fileCov *fileCoverageData) {
	path := fileCov.Path
	if path == "" {
		path = key
	}
	m.file(path)
	for _, id := range sortedStatementIDs(fileCov.StatementMap) {
		m.accumulate(path, fileCov.StatementMap[id], fileCov.S[id])
	}
}

func (m *mappedReport) file(path string) (*fileCoverageData, map[string]string) {
	fc, ok := m.data[path]
	if !ok {
		fc = &fileCoverageData{
			Path:         path,
			StatementMap: make(map[string]statementRange),
			S:            make(map[string]int),
		}
		m.data[path] = fc
		m.index[path] = make(map[string]string)
	}
	return fc, m.index[path]
}

// addStatement maps one generated statement range. Ranges whose ends do not
// resolve, or resolve into different sources, are dropped.
func (m *mappedReport) addStatement(resolver sourcemap.Resolver, generated string, r statementRange, hits int) bool {
	start, ok := resolver.Original(r.Start.Line, r.Start.column())
	if !ok {
		return false
	}
	lastColumn := r.End.column()
	if lastColumn > 0 {
		lastColumn--
	}
	end, ok := resolver.Original(r.End.Line, lastColumn)
	if !ok || end.Source != start.Source {
		return false
	}

	startColumn, endColumn := start.Column, end.Column+1
	m.accumulate(utils.ResolveRelative(generated, start.Source), statementRange{
		Start: location{Line: start.Line, Column: &startColumn},
		End:   location{Line: end.Line, Column: &endColumn},
	}, hits)
	return true
}

// accumulate records a statement under path. A range already recorded for
// the path adds its hits to the existing statement.
func (m *mappedReport) accumulate(path string, r statementRange, hits int) {
	fc, index := m.file(path)
	rangeKey := fmt.Sprintf("%d:%d:%d:%d", r.Start.Line, r.Start.column(), r.End.Line, r.End.column())
	if id, seen := index[rangeKey]; seen {
		fc.S[id] += hits
		return
	}
	id := fmt.Sprintf("%d", len(fc.StatementMap))
	index[rangeKey] = id
	fc.StatementMap[id] = copyRange(r)
	fc.S[id] = hits
}

func copyRange(r statementRange) statementRange {
	return statementRange{
		Start: location{Line: r.Start.Line, Column: copyColumn(r.Start.Column)},
		End:   location{Line: r.End.Line, Column: copyColumn(r.End.Column)},
	}
}

func copyColumn(c *int) *int {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
