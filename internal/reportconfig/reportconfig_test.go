package reportconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/IgorBayerl/unicov/internal/logging"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unicov.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	rc, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, parser.FormatAuto, rc.Format())
	assert.False(t, rc.CaseInsensitive())
	assert.Empty(t, rc.FileFilters())
	assert.Empty(t, rc.ReportFiles())
	assert.Equal(t, logging.Info, rc.VerbosityLevel())
	assert.Equal(t, OutputText, rc.Output())
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
reports:
  - coverage/lcov.json
  - build/cobertura.xml
format: Cobertura
case_insensitive: true
file_filters:
  - "+src/*"
  - "-*_test.go"
verbosity: warning
output: json
`)

	rc, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"coverage/lcov.json", "build/cobertura.xml"}, rc.ReportFiles())
	assert.Equal(t, parser.FormatCobertura, rc.Format())
	assert.True(t, rc.CaseInsensitive())
	assert.Equal(t, []string{"+src/*", "-*_test.go"}, rc.FileFilters())
	assert.Equal(t, logging.Warning, rc.VerbosityLevel())
	assert.Equal(t, OutputJSON, rc.Output())
	assert.Equal(t, parser.Options{CaseInsensitive: true, FileFilters: []string{"+src/*", "-*_test.go"}}, rc.Options())
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".unicov.yaml"), []byte("format: jacoco\n"), 0o644))
	chdir(t, dir)

	rc, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, parser.FormatJaCoCo, rc.Format())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "format: jacoco\ncase_insensitive: false\n")
	t.Setenv("UNICOV_FORMAT", "xccov")
	t.Setenv("UNICOV_CASE_INSENSITIVE", "true")
	t.Setenv("UNICOV_FILE_FILTERS", "+a/*,-b/*")

	rc, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, parser.FormatXccov, rc.Format())
	assert.True(t, rc.CaseInsensitive())
	assert.Equal(t, []string{"+a/*", "-b/*"}, rc.FileFilters())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		rc      ReportConfiguration
		wantErr error
		errText string
	}{
		{
			name: "valid",
			rc:   ReportConfiguration{FormatName: "llvm-cov", VerbosityName: "Verbose", OutputMode: "JSON"},
		},
		{
			name:    "unknown format",
			rc:      ReportConfiguration{FormatName: "lcov", VerbosityName: "info"},
			wantErr: parser.ErrUnknownFormat,
		},
		{
			name:    "bad verbosity",
			rc:      ReportConfiguration{VerbosityName: "loud"},
			errText: "invalid verbosity level",
		},
		{
			name:    "bad output",
			rc:      ReportConfiguration{VerbosityName: "info", OutputMode: "xml"},
			errText: "invalid output mode",
		},
		{
			name:    "filter without sign",
			rc:      ReportConfiguration{VerbosityName: "info", FileFilterList: []string{"src/*"}},
			errText: "must start with '+' or '-'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rc.Validate()
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NormalizesOutput(t *testing.T) {
	rc := ReportConfiguration{VerbosityName: "error", OutputMode: " Json "}
	require.NoError(t, rc.Validate())
	assert.Equal(t, OutputJSON, rc.Output())
	assert.Equal(t, logging.Error, rc.VerbosityLevel())
	assert.Equal(t, parser.FormatAuto, rc.Format())
}
