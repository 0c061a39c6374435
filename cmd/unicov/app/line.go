package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/unicov/internal/model"
	"github.com/IgorBayerl/unicov/internal/reportconfig"
)

type lineResult struct {
	Path       string `json:"path"`
	Line       int    `json:"line"`
	Hits       int    `json:"hits"`
	Executable bool   `json:"executable"`
}

func newLineCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "line <file> <line> [report...]",
		Short: "Print the hit count of one source line.",
		Long: `Prints how many times a source line was executed according to the merged
reports. A line the reports do not consider executable prints -1; a file
the reports do not know prints 0.`,
		Example: `  unicov line src/app.ts 42 coverage/coverage-final.json
  unicov line src/app.ts 42 --report "coverage/*.json" -o json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lineNumber, err := strconv.Atoi(args[1])
			if err != nil || lineNumber < 1 {
				return fmt.Errorf("invalid line number %q", args[1])
			}

			cov, err := opts.loadCoverage(cmd, args[2:])
			if err != nil {
				return err
			}

			hits := cov.LineHits(args[0], lineNumber)
			out := cmd.OutOrStdout()
			if opts.cfg.Output() == reportconfig.OutputJSON {
				return writeJSON(out, lineResult{
					Path:       args[0],
					Line:       lineNumber,
					Hits:       hits,
					Executable: hits != model.NonExecutable,
				})
			}
			fmt.Fprintln(out, hits)
			return nil
		},
	}
}
