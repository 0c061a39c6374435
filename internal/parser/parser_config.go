package parser

import (
	"fmt"
	"strings"
)

// Format identifies a coverage report format.
type Format string

const (
	FormatAuto      Format = "auto"
	FormatJSON      Format = "json"
	FormatCobertura Format = "cobertura"
	FormatJaCoCo    Format = "jacoco"
	FormatXccov     Format = "xccov"
	FormatBullseye  Format = "bullseye"
	FormatLLVMCov   Format = "llvm-cov"
)

// ParseFormat maps a user supplied format name onto a Format. Matching is
// case-insensitive; an unknown name fails with ErrUnknownFormat.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatAuto, FormatJSON, FormatCobertura, FormatJaCoCo, FormatXccov, FormatBullseye, FormatLLVMCov:
		return f, nil
	case "":
		return FormatAuto, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Options holds the settings shared by all adapters.
type Options struct {
	// CaseInsensitive folds file path keys so that paths differing only by
	// case are treated as the same file.
	CaseInsensitive bool
	// FileFilters are "+pattern"/"-pattern" rules applied to file paths after
	// parsing. An empty list keeps every file.
	FileFilters []string
}
