package jsoncov

import (
	"encoding/json"
	"sort"
	"strconv"
)

// location is a position inside a statement range. Column is a pointer
// because reporters emit null for unknown columns.
type location struct {
	Line   int  `json:"line"`
	Column *int `json:"column"`
}

// hasColumn reports whether the column is present and non-zero.
func (l location) hasColumn() bool {
	return l.Column != nil && *l.Column != 0
}

func (l location) column() int {
	if l.Column == nil {
		return 0
	}
	return *l.Column
}

type statementRange struct {
	Start location `json:"start"`
	End   location `json:"end"`
}

// fileCoverageData is one file record of a statement-map report.
type fileCoverageData struct {
	Path           string                    `json:"path"`
	StatementMap   map[string]statementRange `json:"statementMap"`
	S              map[string]int            `json:"s"`
	InputSourceMap json.RawMessage           `json:"inputSourceMap,omitempty"`
}

func (f *fileCoverageData) hasSourceMap() bool {
	raw := string(f.InputSourceMap)
	return raw != "" && raw != "null" && raw != "{}" && raw != `""`
}

// coverageMapData is the whole report, keyed by file.
type coverageMapData map[string]*fileCoverageData

func (d coverageMapData) sortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedStatementIDs orders statement ids numerically, the order reporters
// allocate them in. Non-numeric ids follow in lexical order.
func sortedStatementIDs(statements map[string]statementRange) []string {
	ids := make([]string, 0, len(statements))
	for id := range statements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		}
		return ids[i] < ids[j]
	})
	return ids
}
