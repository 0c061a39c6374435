package filtering

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/IgorBayerl/unicov/internal/model"
)

// IFilter decides whether a file path is kept in the coverage model.
type IFilter interface {
	IsElementIncludedInReport(name string) bool
	HasCustomFilters() bool
}

// DefaultFilter is the default implementation of IFilter.
type DefaultFilter struct {
	includeFilters []*regexp.Regexp
	excludeFilters []*regexp.Regexp
	hasCustom      bool
}

// NewDefaultFilter creates a filter from "+pattern" (include) and "-pattern"
// (exclude) rules. '*' matches any run of characters, '?' a single one, and
// '/' and '\' match each other so that Windows and POSIX paths share rules.
// Matching is case-insensitive. Without include rules everything is included.
func NewDefaultFilter(filters []string) (IFilter, error) {
	df := &DefaultFilter{}
	var errs []string

	for _, f := range filters {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
			continue
		case strings.HasPrefix(f, "+") || strings.HasPrefix(f, "-"):
			re, err := createFilterRegex(f)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid filter '%s': %v", f, err))
				continue
			}
			if f[0] == '+' {
				df.includeFilters = append(df.includeFilters, re)
			} else {
				df.excludeFilters = append(df.excludeFilters, re)
			}
		default:
			errs = append(errs, fmt.Sprintf("filter '%s' must start with '+' or '-'", f))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("error creating file filter: %s", strings.Join(errs, "; "))
	}

	df.hasCustom = len(df.includeFilters) > 0 || len(df.excludeFilters) > 0
	if len(df.includeFilters) == 0 {
		re, _ := createFilterRegex("+*")
		df.includeFilters = append(df.includeFilters, re)
	}
	return df, nil
}

// IsElementIncludedInReport checks if the given name matches the filter rules.
// Exclusions take precedence over inclusions.
func (df *DefaultFilter) IsElementIncludedInReport(name string) bool {
	for _, excludeRe := range df.excludeFilters {
		if excludeRe.MatchString(name) {
			return false
		}
	}
	for _, includeRe := range df.includeFilters {
		if includeRe.MatchString(name) {
			return true
		}
	}
	return false
}

// HasCustomFilters returns true if any include or exclude filters were specified.
func (df *DefaultFilter) HasCustomFilters() bool {
	return df.hasCustom
}

// Apply returns the files of m accepted by f. When f has no custom rules m
// itself is returned.
func Apply(m model.CoverageMap, f IFilter) model.CoverageMap {
	if f == nil || !f.HasCustomFilters() {
		return m
	}
	kept := make(model.CoverageMap, len(m))
	for path, fc := range m {
		if f.IsElementIncludedInReport(path) {
			kept[path] = fc
		}
	}
	return kept
}

func createFilterRegex(filter string) (*regexp.Regexp, error) {
	pattern := regexp.QuoteMeta(filter[1:])
	pattern = strings.ReplaceAll(pattern, `\*`, ".*")
	pattern = strings.ReplaceAll(pattern, `\?`, ".")
	pattern = strings.ReplaceAll(pattern, `\\`, "/")
	pattern = strings.ReplaceAll(pattern, "/", `[/\\]`)
	return regexp.Compile("(?i)^" + pattern + "$")
}
