package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgorBayerl/unicov/internal/parser"
	"github.com/IgorBayerl/unicov/internal/reportconfig"
	"github.com/IgorBayerl/unicov/internal/unicov"
)

type detection struct {
	Path   string        `json:"path"`
	Format parser.Format `json:"format"`
}

func newDetectCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [report...]",
		Short: "Print the detected format of each report.",
		Example: `  unicov detect coverage/coverage-final.json
  unicov detect "build/**/*.xml" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := opts.reportFiles(args)
			if err != nil {
				return err
			}

			loader := unicov.NewLoader(nil)
			detections := make([]detection, 0, len(files))
			for _, f := range files {
				format, err := loader.DetectFileFormat(f)
				if err != nil {
					return err
				}
				detections = append(detections, detection{Path: f, Format: format})
			}

			out := cmd.OutOrStdout()
			if opts.cfg.Output() == reportconfig.OutputJSON {
				return writeJSON(out, detections)
			}
			for _, d := range detections {
				fmt.Fprintf(out, "%s\t%s\n", d.Path, d.Format)
			}
			return nil
		},
	}
}
