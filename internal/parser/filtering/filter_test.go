package filtering

import (
	"testing"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFilter(t *testing.T) {
	testCases := []struct {
		name    string
		filters []string
		path    string
		want    bool
	}{
		{"no filters include everything", nil, "src/a.go", true},
		{"include match", []string{"+src/*"}, "src/a.go", true},
		{"include miss", []string{"+src/*"}, "test/a.go", false},
		{"exclude wins", []string{"+*", "-*_test.go"}, "src/a_test.go", false},
		{"case insensitive", []string{"+SRC/*.GO"}, "src/a.go", true},
		{"separators match each other", []string{"+src/lib/*"}, `src\lib\x.cs`, true},
		{"question mark", []string{"+a?.go"}, "ab.go", true},
		{"literal dot", []string{"+a.go"}, "abgo", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewDefaultFilter(tc.filters)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.IsElementIncludedInReport(tc.path))
		})
	}
}

func TestNewDefaultFilter_Invalid(t *testing.T) {
	_, err := NewDefaultFilter([]string{"src/*"})
	assert.ErrorContains(t, err, "must start with '+' or '-'")

	f, err := NewDefaultFilter([]string{"", "  "})
	require.NoError(t, err)
	assert.False(t, f.HasCustomFilters())
}

func TestApply(t *testing.T) {
	m := model.CoverageMap{}
	m.File("src/a.go").SetHits(1, 1)
	m.File("vendor/b.go").SetHits(1, 0)

	f, err := NewDefaultFilter([]string{"-vendor/*"})
	require.NoError(t, err)

	kept := Apply(m, f)
	assert.Equal(t, []string{"src/a.go"}, kept.Paths())
	assert.Len(t, m, 2, "input is not modified")

	noop, _ := NewDefaultFilter(nil)
	assert.Equal(t, m, Apply(m, noop))
}
