package jacoco

import (
	"errors"
	"testing"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<!DOCTYPE report PUBLIC "-//JACOCO//DTD Report 1.1//EN" "report.dtd">
<report name="demo">
  <sessioninfo id="host-1" start="1700000000000" dump="1700000001000"/>
  <package name="com/example">
    <class name="com/example/Calc" sourcefilename="Calc.java">
      <method name="add" desc="(II)I" line="5"/>
    </class>
    <sourcefile name="Calc.java">
      <line nr="5" mi="0" ci="4" mb="0" cb="0"/>
      <line nr="6" mi="3" ci="0" mb="2" cb="0"/>
      <line nr="7" mi="1" ci="2" mb="1" cb="1"/>
      <counter type="LINE" missed="1" covered="2"/>
    </sourcefile>
  </package>
  <group name="module-b">
    <group name="inner">
      <package name="org/b">
        <sourcefile name="B.java">
          <line nr="10" mi="0" ci="1"/>
        </sourcefile>
      </package>
    </group>
  </group>
</report>`

func TestParse(t *testing.T) {
	got, err := NewJacocoParser().Parse(sampleReport, parser.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"com/example/Calc.java", "org/b/B.java"}, got.Paths())
	assert.Equal(t, map[int]model.LineCoverage{
		5: {Number: 5, Hits: 1},
		6: {Number: 6, Hits: 0},
		7: {Number: 7, Hits: 1},
	}, got["com/example/Calc.java"].LineMap)
	assert.Equal(t, 1, got["org/b/B.java"].LineMap[10].Hits)
}

func TestParse_CaseInsensitive(t *testing.T) {
	got, err := NewJacocoParser().Parse(sampleReport, parser.Options{CaseInsensitive: true})
	require.NoError(t, err)
	assert.Contains(t, got, "com/example/calc.java")
}

func TestParse_Errors(t *testing.T) {
	p := NewJacocoParser()
	assert.False(t, p.SupportsContent(`<coverage><packages/></coverage>`))

	_, err := p.Parse(`<coverage/>`, parser.Options{})
	assert.True(t, errors.Is(err, parser.ErrInvalidFormat))

	_, err = p.Parse(`<report><sourcefile name="a"></report>`, parser.Options{})
	var parseErr *parser.ParseError
	assert.True(t, errors.As(err, &parseErr))
}
