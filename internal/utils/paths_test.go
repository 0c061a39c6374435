package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		name            string
		path            string
		caseInsensitive bool
		want            string
	}{
		{"case sensitive keeps path", `C:\Src\Foo.cpp`, false, `C:\Src\Foo.cpp`},
		{"case insensitive folds", `C:\Src\Foo.cpp`, true, `c:\src\foo.cpp`},
		{"mixed case forward slashes", "/Users/Dev/Project/Main.swift", true, "/users/dev/project/main.swift"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePath(tc.path, tc.caseInsensitive))
		})
	}
	assert.Equal(t, NormalizePath("/A/b.go", true), NormalizePath("/a/B.go", true))
}

func TestJoinReportPath(t *testing.T) {
	assert.Equal(t, "com/example/Foo.java", JoinReportPath("com/example", "Foo.java"))
	assert.Equal(t, "Foo.java", JoinReportPath("", "Foo.java"))
	assert.Equal(t, "/abs/src/a.cpp", JoinReportPath("/abs/", "src", "a.cpp"))
	assert.Equal(t, "", JoinReportPath())
}

func TestResolveRelative(t *testing.T) {
	assert.Equal(t, "dist/src/app.ts", ResolveRelative("dist/app.js", "src/app.ts"))
	assert.Equal(t, "/abs/app.ts", ResolveRelative("dist/app.js", "/abs/app.ts"))
	assert.Equal(t, "src/app.ts", ResolveRelative("dist/app.js", "../src/app.ts"))
}

func TestParseHits(t *testing.T) {
	assert.Equal(t, 12, ParseHits("12"))
	assert.Equal(t, 3, ParseHits("3.0"))
	assert.Equal(t, 0, ParseHits("abc"))
	assert.Equal(t, 0, ParseHits("-4.5"))
	assert.Equal(t, 7, ParseLargeInteger(" x ", 7))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.6667, RoundTo(2.0/3.0, 4))
	assert.Equal(t, 0.3333, RoundTo(1.0/3.0, 4))
	assert.Equal(t, 1.0, RoundTo(1, 4))
}
