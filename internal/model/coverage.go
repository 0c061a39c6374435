// Package model holds the canonical, format-agnostic coverage data that every
// report adapter produces and every query reads.
package model

import "sort"

// NonExecutable is returned by point queries for a line that belongs to a
// tracked file but is not an executable statement. It is never stored in a
// LineMap.
const NonExecutable = -1

// LineCoverage is the hit count of a single source line.
type LineCoverage struct {
	Number int `json:"number"`
	Hits   int `json:"hits"`
}

// FileCoverage is the per-line coverage of one source file.
type FileCoverage struct {
	Path    string               `json:"path"`
	LineMap map[int]LineCoverage `json:"lineMap"`
}

// NewFileCoverage creates an empty FileCoverage for path.
func NewFileCoverage(path string) *FileCoverage {
	return &FileCoverage{
		Path:    path,
		LineMap: make(map[int]LineCoverage),
	}
}

// SetHits records hits for a line, replacing any previous value.
// Line numbers below 1 are ignored.
func (fc *FileCoverage) SetHits(number, hits int) {
	if number < 1 {
		return
	}
	fc.LineMap[number] = LineCoverage{Number: number, Hits: hits}
}

// SetRange assigns hits to every line in [start, end]. An inverted range
// assigns nothing.
func (fc *FileCoverage) SetRange(start, end, hits int) {
	for n := start; n <= end; n++ {
		fc.SetHits(n, hits)
	}
}

// Lines returns the tracked line numbers in ascending order.
func (fc *FileCoverage) Lines() []int {
	lines := make([]int, 0, len(fc.LineMap))
	for n := range fc.LineMap {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines
}

// Clone returns a deep copy of fc.
func (fc *FileCoverage) Clone() *FileCoverage {
	c := &FileCoverage{
		Path:    fc.Path,
		LineMap: make(map[int]LineCoverage, len(fc.LineMap)),
	}
	for n, l := range fc.LineMap {
		c.LineMap[n] = l
	}
	return c
}

// CoverageMap maps a file path to its coverage. It is the unit of exchange
// between adapters, the merger and the query facade.
type CoverageMap map[string]*FileCoverage

// File returns the coverage for path, creating it when absent.
func (m CoverageMap) File(path string) *FileCoverage {
	fc, ok := m[path]
	if !ok {
		fc = NewFileCoverage(path)
		m[path] = fc
	}
	return fc
}

// Paths returns the tracked file paths in lexical order.
func (m CoverageMap) Paths() []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Clone returns a deep copy of m.
func (m CoverageMap) Clone() CoverageMap {
	if m == nil {
		return nil
	}
	c := make(CoverageMap, len(m))
	for p, fc := range m {
		c[p] = fc.Clone()
	}
	return c
}
