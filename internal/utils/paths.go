package utils

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

var pathFolder = cases.Fold()

// NormalizePath returns the key under which a reported file path is stored.
// With caseInsensitive set the path is Unicode case-folded, so reports from
// case-insensitive filesystems that spell the same file differently collapse
// onto one entry. The path is otherwise left as the tool reported it.
func NormalizePath(path string, caseInsensitive bool) string {
	if !caseInsensitive {
		return path
	}
	return pathFolder.String(path)
}

// JoinReportPath joins path segments taken from a report with forward
// slashes, skipping empty segments. Report paths are not host paths, so
// filepath.Join would rewrite them on Windows.
func JoinReportPath(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/\\")
		if s != "" {
			parts = append(parts, s)
		}
	}
	joined := strings.Join(parts, "/")
	if len(segments) > 0 && strings.HasPrefix(segments[0], "/") {
		joined = "/" + joined
	}
	return joined
}

// ResolveRelative resolves target against the directory of base unless
// target is already absolute.
func ResolveRelative(base, target string) string {
	if target == "" || filepath.IsAbs(target) || strings.HasPrefix(target, "/") {
		return target
	}
	return filepath.ToSlash(filepath.Join(filepath.Dir(base), target))
}
