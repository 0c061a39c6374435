package reportconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IgorBayerl/unicov/internal/logging"
	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys, e.g. UNICOV_CASE_INSENSITIVE.
const EnvPrefix = "UNICOV"

// DefaultConfigName is the base name of the configuration file looked up in
// the working directory when no explicit file is given.
const DefaultConfigName = ".unicov"

// Configuration keys.
const (
	KeyReports         = "reports"
	KeyFormat          = "format"
	KeyCaseInsensitive = "case_insensitive"
	KeyFileFilters     = "file_filters"
	KeyVerbosity       = "verbosity"
	KeyOutput          = "output"
)

// Output modes of the command line front-end.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// IReportConfiguration describes how coverage reports are located, parsed and
// presented.
type IReportConfiguration interface {
	ReportFiles() []string
	Format() parser.Format
	CaseInsensitive() bool
	FileFilters() []string
	VerbosityLevel() logging.VerbosityLevel
	Output() string
}

// ReportConfiguration is the concrete IReportConfiguration. Its fields are
// filled by viper from defaults, the configuration file, UNICOV_* variables
// and bound command line flags, in increasing precedence.
type ReportConfiguration struct {
	Reports         []string `mapstructure:"reports"`
	FormatName      string   `mapstructure:"format"`
	Insensitive     bool     `mapstructure:"case_insensitive"`
	FileFilterList  []string `mapstructure:"file_filters"`
	VerbosityName   string   `mapstructure:"verbosity"`
	OutputMode      string   `mapstructure:"output"`
	resolvedFormat  parser.Format
	resolvedVerbose logging.VerbosityLevel
}

func (rc *ReportConfiguration) ReportFiles() []string                  { return rc.Reports }
func (rc *ReportConfiguration) Format() parser.Format                  { return rc.resolvedFormat }
func (rc *ReportConfiguration) CaseInsensitive() bool                  { return rc.Insensitive }
func (rc *ReportConfiguration) FileFilters() []string                  { return rc.FileFilterList }
func (rc *ReportConfiguration) VerbosityLevel() logging.VerbosityLevel { return rc.resolvedVerbose }
func (rc *ReportConfiguration) Output() string                         { return rc.OutputMode }

// Options returns the adapter options carried by the configuration.
func (rc *ReportConfiguration) Options() parser.Options {
	return parser.Options{
		CaseInsensitive: rc.Insensitive,
		FileFilters:     rc.FileFilterList,
	}
}

// Validate resolves the format and verbosity names and checks the output
// mode. It must be called before Format or VerbosityLevel are used.
func (rc *ReportConfiguration) Validate() error {
	var errs []error

	format, err := parser.ParseFormat(rc.FormatName)
	if err != nil {
		errs = append(errs, err)
	}
	rc.resolvedFormat = format

	verbosity, err := logging.ParseVerbosity(rc.VerbosityName)
	if err != nil {
		errs = append(errs, err)
	}
	rc.resolvedVerbose = verbosity

	rc.OutputMode = strings.ToLower(strings.TrimSpace(rc.OutputMode))
	switch rc.OutputMode {
	case "":
		rc.OutputMode = OutputText
	case OutputText, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid output mode %q, expected %q or %q", rc.OutputMode, OutputText, OutputJSON))
	}

	for _, f := range rc.FileFilterList {
		if !strings.HasPrefix(f, "+") && !strings.HasPrefix(f, "-") {
			errs = append(errs, fmt.Errorf("file filter %q must start with '+' or '-'", f))
		}
	}

	return errors.Join(errs...)
}

// NewViper returns a viper instance with the defaults and environment
// binding used by Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyReports, []string{})
	v.SetDefault(KeyFormat, string(parser.FormatAuto))
	v.SetDefault(KeyCaseInsensitive, false)
	v.SetDefault(KeyFileFilters, []string{})
	v.SetDefault(KeyVerbosity, logging.Info.String())
	v.SetDefault(KeyOutput, OutputText)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration held by v. When configFile is set it must
// exist; otherwise a .unicov.yaml in the working directory is used if
// present.
func Load(v *viper.Viper, configFile string) (*ReportConfiguration, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	rc := &ReportConfiguration{}
	if err := v.Unmarshal(rc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return rc, nil
}
