package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/IgorBayerl/unicov/internal/glob"
	"github.com/IgorBayerl/unicov/internal/logging"
	"github.com/IgorBayerl/unicov/internal/reportconfig"
	"github.com/IgorBayerl/unicov/internal/unicov"
)

// rootOptions carries the state shared by all subcommands.
type rootOptions struct {
	configFile string
	v          *viper.Viper
	cfg        *reportconfig.ReportConfiguration
	start      time.Time
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"report":           reportconfig.KeyReports,
	"format":           reportconfig.KeyFormat,
	"case-insensitive": reportconfig.KeyCaseInsensitive,
	"filefilters":      reportconfig.KeyFileFilters,
	"verbosity":        reportconfig.KeyVerbosity,
	"output":           reportconfig.KeyOutput,
}

// NewUnicovCommand creates the root command for the unicov tool.
func NewUnicovCommand() *cobra.Command {
	opts := &rootOptions{v: reportconfig.NewViper()}

	cmd := &cobra.Command{
		Use:   "unicov",
		Short: "Normalize coverage reports and query line coverage.",
		Long: `unicov reads code coverage reports produced by different tools and
normalizes them into one per-line hit count model.

Supported formats: json (Istanbul style), cobertura, jacoco, xccov,
bullseye and llvm-cov. The format is detected from the report content
unless --format is given.

Settings are read from .unicov.yaml (or --config), UNICOV_* environment
variables and flags, in increasing precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd.Flags(), cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			slog.Debug("Finished.", "command", cmd.Name(), "elapsed", time.Since(opts.start))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Configuration file (default .unicov.yaml in the working directory)")
	flags.StringSlice("report", nil, "Coverage report files or glob patterns; ';' separates several patterns")
	flags.String("format", "auto", "Report format: auto, json, cobertura, jacoco, xccov, bullseye or llvm-cov")
	flags.Bool("case-insensitive", false, "Treat file paths differing only by case as the same file")
	flags.StringSlice("filefilters", nil, "File path filters, e.g. +src/*,-*_test.go")
	flags.String("verbosity", "Info", "Logging verbosity level (Verbose, Info, Warning, Error, Off)")
	flags.StringP("output", "o", reportconfig.OutputText, "Output mode: text or json")

	cmd.AddCommand(newDetectCommand(opts))
	cmd.AddCommand(newSummaryCommand(opts))
	cmd.AddCommand(newLineCommand(opts))
	cmd.AddCommand(newExportCommand(opts))

	return cmd
}

func (o *rootOptions) load(flags *pflag.FlagSet, cmd *cobra.Command) error {
	o.start = time.Now()
	for name, key := range flagKeys {
		if err := o.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}

	cfg, err := reportconfig.Load(o.v, o.configFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	slog.SetDefault(logging.NewLogger(cfg.VerbosityLevel(), cmd.ErrOrStderr()))
	return nil
}

// reportFiles resolves report arguments, falling back to the configured
// reports, into the list of files to load. Patterns without glob syntax are
// kept verbatim so that a missing file surfaces as a load error.
func (o *rootOptions) reportFiles(args []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = o.cfg.ReportFiles()
	}

	var files []string
	var invalidPatterns []string
	seen := make(map[string]struct{})
	for _, arg := range patterns {
		for _, pattern := range strings.Split(arg, ";") {
			pattern = strings.TrimSpace(pattern)
			if pattern == "" {
				continue
			}
			expanded := []string{pattern}
			if glob.HasMeta(pattern) {
				var err error
				if expanded, err = glob.GetFiles(pattern); err != nil {
					return nil, fmt.Errorf("error expanding report file pattern '%s': %w", pattern, err)
				}
				if len(expanded) == 0 {
					slog.Warn("No files found for report pattern.", "pattern", pattern)
					invalidPatterns = append(invalidPatterns, pattern)
				}
			}
			for _, f := range expanded {
				if _, dup := seen[f]; !dup {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
		}
	}

	if len(files) == 0 {
		if len(invalidPatterns) > 0 {
			return nil, fmt.Errorf("no report files found for patterns: %s", strings.Join(invalidPatterns, ", "))
		}
		return nil, fmt.Errorf("no report files given; pass them as arguments, with --report or in the configuration file")
	}
	return files, nil
}

// loadCoverage loads and merges the reports named by args.
func (o *rootOptions) loadCoverage(cmd *cobra.Command, args []string) (*unicov.Unicov, error) {
	files, err := o.reportFiles(args)
	if err != nil {
		return nil, err
	}
	return unicov.FromCoverages(cmd.Context(), files, o.cfg.Format(), o.cfg.Options())
}
