package glob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTree creates a small report tree under a temp dir and returns its root.
func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := []string{
		"coverage/cobertura.xml",
		"coverage/jacoco.xml",
		"coverage/lcov.json",
		"coverage/nested/deep/xccov.xml",
		"coverage/nested/Upper.XML",
		"build/report-1.json",
		"build/report-2.json",
		"build/report-a.json",
	}
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	return root
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestGetFiles(t *testing.T) {
	root := setupTree(t)

	testCases := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "literal file",
			pattern:  "coverage/lcov.json",
			expected: []string{"coverage/lcov.json"},
		},
		{
			name:     "single asterisk",
			pattern:  "coverage/*.xml",
			expected: []string{"coverage/cobertura.xml", "coverage/jacoco.xml"},
		},
		{
			name:     "question mark",
			pattern:  "build/report-?.json",
			expected: []string{"build/report-1.json", "build/report-2.json", "build/report-a.json"},
		},
		{
			name:     "character class",
			pattern:  "build/report-[12].json",
			expected: []string{"build/report-1.json", "build/report-2.json"},
		},
		{
			name:     "brace expansion",
			pattern:  "{coverage/lcov,build/report-a}.json",
			expected: []string{"build/report-a.json", "coverage/lcov.json"},
		},
		{
			name:    "double asterisk matches zero or more directories",
			pattern: "coverage/**/*.xml",
			expected: []string{
				"coverage/cobertura.xml",
				"coverage/jacoco.xml",
				"coverage/nested/Upper.XML",
				"coverage/nested/deep/xccov.xml",
			},
		},
		{
			name:    "trailing double asterisk lists all files",
			pattern: "coverage/nested/**",
			expected: []string{
				"coverage/nested/Upper.XML",
				"coverage/nested/deep/xccov.xml",
			},
		},
		{
			name:     "wildcard directory segment",
			pattern:  "*/report-a.json",
			expected: []string{"build/report-a.json"},
		},
		{
			name:     "no match",
			pattern:  "coverage/*.info",
			expected: []string{},
		},
		{
			name:     "missing directory",
			pattern:  "absent/**/*.xml",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			files, err := GetFiles(filepath.ToSlash(root) + "/" + tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rel(t, root, files))
			for _, f := range files {
				assert.True(t, filepath.IsAbs(f), f)
			}
		})
	}
}

func TestGlob_IgnoreCase(t *testing.T) {
	root := setupTree(t)
	pattern := filepath.ToSlash(root) + "/coverage/nested/*.xml"

	files, err := GetFiles(pattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"coverage/nested/Upper.XML"}, rel(t, root, files))

	g := NewGlob(pattern)
	g.IgnoreCase = false
	files, err = g.Expand()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGetFiles_Errors(t *testing.T) {
	_, err := GetFiles("coverage/[.xml")
	assert.Error(t, err)

	_, err = GetFiles("coverage/{a,b.xml")
	assert.ErrorContains(t, err, "unbalanced braces")

	files, err := GetFiles("")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestUngroup(t *testing.T) {
	testCases := []struct {
		pattern  string
		expected []string
	}{
		{"plain", []string{"plain"}},
		{"{a,b}c", []string{"ac", "bc"}},
		{"x{a,b}{1,2}", []string{"xa1", "xa2", "xb1", "xb2"}},
		{"{a,{b,c}}d", []string{"ad", "bd", "cd"}},
		{"{,s}", []string{"", "s"}},
	}
	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := ungroup(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestHasMeta(t *testing.T) {
	assert.False(t, HasMeta("coverage/lcov.json"))
	assert.True(t, HasMeta("coverage/*.json"))
	assert.True(t, HasMeta("{a,b}.xml"))
	assert.True(t, HasMeta("file?.xml"))
}
