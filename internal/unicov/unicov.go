// Package unicov loads coverage reports of any supported format into one
// canonical model and answers line-level and aggregate coverage queries.
package unicov

import (
	"errors"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/utils"
)

// ErrModelUnset is returned by aggregate queries on a Unicov without data.
var ErrModelUnset = errors.New("coverage data is not set")

// OverallLineCoverage summarises line coverage. Rate is rounded to four
// decimal places and is 1 when no executable line is known.
type OverallLineCoverage struct {
	CoveredLines   int     `json:"coveredLines"`
	UncoveredLines int     `json:"uncoveredLines"`
	Rate           float64 `json:"overallLineCoverageRate"`
}

// Unicov wraps one coverage model. The model is published once at
// construction and only read afterwards, so a Unicov is safe for concurrent
// queries.
type Unicov struct {
	data            model.CoverageMap
	caseInsensitive bool
}

// New wraps data. A nil map yields a Unicov in the unset state. Query paths
// are case-folded when caseInsensitive is set, matching how the adapters
// stored them.
func New(data model.CoverageMap, caseInsensitive bool) *Unicov {
	return &Unicov{data: data, caseInsensitive: caseInsensitive}
}

// CoverageData returns the wrapped model, or nil when unset. Callers must
// not modify it.
func (u *Unicov) CoverageData() model.CoverageMap {
	if u == nil {
		return nil
	}
	return u.data
}

// IsSet reports whether a model is loaded.
func (u *Unicov) IsSet() bool {
	return u != nil && u.data != nil
}

// Files returns the tracked file paths in lexical order.
func (u *Unicov) Files() []string {
	if !u.IsSet() {
		return nil
	}
	return u.data.Paths()
}

// LineHits returns the hit count of a line. An unset model or an unknown
// file yields 0; a known file without an entry for the line yields
// model.NonExecutable.
func (u *Unicov) LineHits(path string, lineNumber int) int {
	fc := u.file(path)
	if fc == nil {
		return 0
	}
	line, ok := fc.LineMap[lineNumber]
	if !ok {
		return model.NonExecutable
	}
	return line.Hits
}

// OverallLineCoverage counts covered and uncovered lines over all files.
func (u *Unicov) OverallLineCoverage() (OverallLineCoverage, error) {
	if !u.IsSet() {
		return OverallLineCoverage{}, ErrModelUnset
	}
	var c counter
	for _, fc := range u.data {
		c.add(fc)
	}
	return c.summary(), nil
}

// FileLineCoverage is OverallLineCoverage restricted to one file. The second
// result is false when the file is not tracked.
func (u *Unicov) FileLineCoverage(path string) (OverallLineCoverage, bool) {
	fc := u.file(path)
	if fc == nil {
		return OverallLineCoverage{}, false
	}
	var c counter
	c.add(fc)
	return c.summary(), true
}

func (u *Unicov) file(path string) *model.FileCoverage {
	if !u.IsSet() {
		return nil
	}
	return u.data[utils.NormalizePath(path, u.caseInsensitive)]
}

type counter struct {
	covered, uncovered int
}

// add counts a file's lines. Negative hits are not expected in a stored map
// and count toward neither total.
func (c *counter) add(fc *model.FileCoverage) {
	if fc == nil {
		return
	}
	for _, line := range fc.LineMap {
		switch {
		case line.Hits > 0:
			c.covered++
		case line.Hits == 0:
			c.uncovered++
		}
	}
}

func (c counter) summary() OverallLineCoverage {
	rate := 1.0
	if total := c.covered + c.uncovered; total > 0 {
		rate = utils.RoundTo(float64(c.covered)/float64(total), 4)
	}
	return OverallLineCoverage{
		CoveredLines:   c.covered,
		UncoveredLines: c.uncovered,
		Rate:           rate,
	}
}

// Merge combines the models of items into a new Unicov. Later items win on
// conflicting lines; unset items are skipped. Merging nothing yields an
// empty, set model.
func Merge(items ...*Unicov) *Unicov {
	maps := make([]model.CoverageMap, 0, len(items))
	caseInsensitive := false
	for _, item := range items {
		if !item.IsSet() {
			continue
		}
		maps = append(maps, item.data)
		caseInsensitive = caseInsensitive || item.caseInsensitive
	}
	return New(model.Merge(maps...), caseInsensitive)
}
