package llvmcov

import (
	"encoding/json"
	"fmt"
	"math"
)

// exportData is the top level of `llvm-cov export -format=text`.
type exportData struct {
	Type    string  `json:"type"`
	Version string  `json:"version"`
	Data    []datum `json:"data"`
}

type datum struct {
	Files []file `json:"files"`
}

type file struct {
	Filename string    `json:"filename"`
	Segments []segment `json:"segments"`
}

// segment is one entry of a file's segment list, exported as the array
// [line, column, count, hasCount, isRegionEntry, isGapRegion]. Older
// exporters omit isGapRegion.
type segment struct {
	Line          int
	Column        int
	Count         int
	HasCount      bool
	IsRegionEntry bool
	IsGapRegion   bool
}

func (s *segment) UnmarshalJSON(b []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if len(fields) < 4 {
		return fmt.Errorf("segment has %d fields, want at least 4", len(fields))
	}

	var count float64
	if err := json.Unmarshal(fields[0], &s.Line); err != nil {
		return fmt.Errorf("segment line: %w", err)
	}
	if err := json.Unmarshal(fields[1], &s.Column); err != nil {
		return fmt.Errorf("segment column: %w", err)
	}
	if err := json.Unmarshal(fields[2], &count); err != nil {
		return fmt.Errorf("segment count: %w", err)
	}
	if err := json.Unmarshal(fields[3], &s.HasCount); err != nil {
		return fmt.Errorf("segment hasCount: %w", err)
	}
	if len(fields) > 4 {
		if err := json.Unmarshal(fields[4], &s.IsRegionEntry); err != nil {
			return fmt.Errorf("segment isRegionEntry: %w", err)
		}
	}
	if len(fields) > 5 {
		if err := json.Unmarshal(fields[5], &s.IsGapRegion); err != nil {
			return fmt.Errorf("segment isGapRegion: %w", err)
		}
	}
	s.Count = clampCount(count)
	return nil
}

// clampCount converts an exported counter, which llvm-cov clamps to int64,
// to an int.
func clampCount(v float64) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	}
	return int(v)
}
