package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export [report...]",
		Short: "Write the merged coverage model as JSON.",
		Long: `Loads and merges the reports and writes the normalized model: an object
keyed by file path whose values hold the per-line hit counts.`,
		Example: `  unicov export coverage/lcov.json build/jacoco.xml --out merged.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cov, err := opts.loadCoverage(cmd, args)
			if err != nil {
				return err
			}

			if outFile == "" {
				return writeJSON(cmd.OutOrStdout(), cov.CoverageData())
			}

			var buf bytes.Buffer
			if err := writeJSON(&buf, cov.CoverageData()); err != nil {
				return err
			}
			if err := os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Write to this file instead of standard output")
	return cmd
}
