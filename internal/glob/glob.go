// Package glob finds report files by matching their path names against a
// pattern. Supported syntax:
//   - `?` and `*` match within a single path segment.
//   - `[...]` matches a character class, e.g. `[abc]` or `[a-z]`.
//   - `**` matches zero or more directories.
//   - `{a,b}` matches any of the comma separated groups; groups nest.
//
// Matching of wildcard segments ignores case by default.
package glob

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const metaChars = "*?[{"

// Glob holds a pattern and its matching options.
type Glob struct {
	Pattern    string
	IgnoreCase bool
}

// NewGlob creates a case-insensitive Glob for pattern.
func NewGlob(pattern string) *Glob {
	return &Glob{Pattern: pattern, IgnoreCase: true}
}

// HasMeta reports whether pattern contains any glob syntax.
func HasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, metaChars)
}

// Expand returns the sorted absolute paths of all regular files matching the
// pattern. Unreadable directories are skipped with a warning; a malformed
// pattern is an error.
func (g *Glob) Expand() ([]string, error) {
	patterns, err := ungroup(strings.ReplaceAll(g.Pattern, `\`, "/"))
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{})
	for _, p := range patterns {
		dir, segments := splitRoot(p)
		for _, seg := range segments {
			if _, err := path.Match(seg, ""); err != nil {
				return nil, fmt.Errorf("invalid pattern '%s': %w", g.Pattern, err)
			}
		}
		g.expand(dir, segments, found)
	}

	files := make([]string, 0, len(found))
	for f := range found {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// splitRoot separates the literal leading directory of p from the segments
// that still need matching.
func splitRoot(p string) (string, []string) {
	segments := strings.Split(p, "/")
	dir := ""
	switch {
	case segments[0] == "":
		dir = string(filepath.Separator)
		segments = segments[1:]
	case filepath.VolumeName(segments[0]) == segments[0]:
		dir = segments[0] + string(filepath.Separator)
		segments = segments[1:]
	}
	for len(segments) > 1 && !HasMeta(segments[0]) {
		dir = filepath.Join(dir, segments[0])
		segments = segments[1:]
	}
	if dir == "" {
		dir = "."
	}
	return dir, segments
}

func (g *Glob) expand(dir string, segments []string, found map[string]struct{}) {
	if len(segments) == 0 {
		g.add(dir, found)
		return
	}

	seg, rest := segments[0], segments[1:]
	switch {
	case seg == "" || seg == ".":
		g.expand(dir, rest, found)
	case seg == "**":
		g.expand(dir, rest, found)
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrPermission) {
					slog.Warn("Skipping unreadable directory", "path", p, "error", err)
					return fs.SkipDir
				}
				return err
			}
			if p == dir {
				return nil
			}
			if len(rest) == 0 {
				if !d.IsDir() {
					g.add(p, found)
				}
				return nil
			}
			if d.IsDir() {
				g.expand(p, rest, found)
			}
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Error walking directory", "path", dir, "error", err)
		}
	case !HasMeta(seg):
		g.expand(filepath.Join(dir, seg), rest, found)
	default:
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Warn("Skipping unreadable directory", "path", dir, "error", err)
			}
			return
		}
		for _, e := range entries {
			if len(rest) > 0 && !e.IsDir() {
				continue
			}
			if g.match(seg, e.Name()) {
				g.expand(filepath.Join(dir, e.Name()), rest, found)
			}
		}
	}
}

func (g *Glob) match(pattern, name string) bool {
	if g.IgnoreCase {
		pattern, name = strings.ToLower(pattern), strings.ToLower(name)
	}
	ok, _ := path.Match(pattern, name)
	return ok
}

func (g *Glob) add(p string, found map[string]struct{}) {
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	found[p] = struct{}{}
}

// ungroup handles brace expansion, e.g. "{a,b}c" -> ["ac", "bc"].
func ungroup(p string) ([]string, error) {
	open := strings.IndexByte(p, '{')
	if open < 0 {
		if strings.IndexByte(p, '}') >= 0 {
			return nil, fmt.Errorf("unbalanced braces in pattern: %s", p)
		}
		return []string{p}, nil
	}

	level := 0
	start := open + 1
	var parts []string
	for i := open; i < len(p); i++ {
		switch p[i] {
		case '{':
			level++
		case ',':
			if level == 1 {
				parts = append(parts, p[start:i])
				start = i + 1
			}
		case '}':
			level--
			if level == 0 {
				parts = append(parts, p[start:i])
				prefix, suffix := p[:open], p[i+1:]
				var results []string
				for _, part := range parts {
					expanded, err := ungroup(prefix + part + suffix)
					if err != nil {
						return nil, err
					}
					results = append(results, expanded...)
				}
				return results, nil
			}
		}
	}
	return nil, fmt.Errorf("unbalanced braces in pattern: %s", p)
}

// GetFiles expands pattern into the absolute paths of matching files.
func GetFiles(pattern string) ([]string, error) {
	if pattern == "" {
		return []string{}, nil
	}
	return NewGlob(pattern).Expand()
}
