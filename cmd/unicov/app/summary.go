package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/unicov/internal/reportconfig"
	"github.com/IgorBayerl/unicov/internal/unicov"
)

type fileSummary struct {
	Path string `json:"path"`
	unicov.OverallLineCoverage
}

type summaryReport struct {
	Overall unicov.OverallLineCoverage `json:"overall"`
	Files   []fileSummary              `json:"files,omitempty"`
}

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var perFile bool

	cmd := &cobra.Command{
		Use:   "summary [report...]",
		Short: "Print covered and uncovered line counts of the merged reports.",
		Long: `Loads every report, merges them (later reports win on shared lines) and
prints the overall line coverage. With --files the coverage of each file is
listed as well.`,
		Example: `  unicov summary coverage/cobertura.xml
  unicov summary "coverage/**/*.json;build/jacoco.xml" --files -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cov, err := opts.loadCoverage(cmd, args)
			if err != nil {
				return err
			}
			overall, err := cov.OverallLineCoverage()
			if err != nil {
				return err
			}

			report := summaryReport{Overall: overall}
			if perFile {
				for _, path := range cov.Files() {
					fc, _ := cov.FileLineCoverage(path)
					report.Files = append(report.Files, fileSummary{Path: path, OverallLineCoverage: fc})
				}
			}

			out := cmd.OutOrStdout()
			if opts.cfg.Output() == reportconfig.OutputJSON {
				return writeJSON(out, report)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Files:\t%d\n", len(cov.Files()))
			fmt.Fprintf(w, "Covered lines:\t%d\n", overall.CoveredLines)
			fmt.Fprintf(w, "Uncovered lines:\t%d\n", overall.UncoveredLines)
			fmt.Fprintf(w, "Line coverage:\t%s\n", formatRate(overall.Rate))
			if len(report.Files) > 0 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, "File\tCovered\tUncovered\tRate")
				for _, f := range report.Files {
					fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", f.Path, f.CoveredLines, f.UncoveredLines, formatRate(f.Rate))
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&perFile, "files", false, "List the coverage of every file")
	return cmd
}
