package xccov

import (
	"errors"
	"testing"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `<?xml version="1.0" ?>
<coverage version="1">
  <file path="a.cpp">
    <lineToCover lineNumber="10" covered="true"/>
    <lineToCover lineNumber="11" covered="false"/>
  </file>
  <file path="Sources/App/View.swift">
    <lineToCover lineNumber="3" covered="true"/>
    <lineToCover lineNumber="bogus" covered="true"/>
  </file>
</coverage>`

func TestParse(t *testing.T) {
	got, err := NewXccovParser().Parse(sampleReport, parser.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sources/App/View.swift", "a.cpp"}, got.Paths())
	assert.Equal(t, map[int]model.LineCoverage{
		10: {Number: 10, Hits: 1},
		11: {Number: 11, Hits: 0},
	}, got["a.cpp"].LineMap)
	assert.Equal(t, map[int]model.LineCoverage{3: {Number: 3, Hits: 1}}, got["Sources/App/View.swift"].LineMap,
		"unparsable line numbers are skipped")
}

func TestParse_CaseInsensitive(t *testing.T) {
	got, err := NewXccovParser().Parse(sampleReport, parser.Options{CaseInsensitive: true})
	require.NoError(t, err)
	assert.Contains(t, got, "sources/app/view.swift")
}

func TestParse_Errors(t *testing.T) {
	_, err := NewXccovParser().Parse(`<coverage><file path="x"/></coverage>`, parser.Options{})
	assert.True(t, errors.Is(err, parser.ErrInvalidFormat))

	_, err = NewXccovParser().Parse(`<coverage><file path="x"><lineToCover lineNumber="1"</coverage>`, parser.Options{})
	var parseErr *parser.ParseError
	assert.True(t, errors.As(err, &parseErr))
}
