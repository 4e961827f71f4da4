package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nbsubmit/internal/extract"
	"github.com/pdiddy/nbsubmit/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the marker-delimited region into a submission notebook",
	Long: `Extract scans the input notebook for the cell containing the start
marker line and the first cell after it containing the end marker line,
then writes the cells between them to a new notebook. Each marker must
appear in exactly one cell in the whole document. Marker cells themselves
are left out unless --include-markers is given; code-cell outputs and
execution counts are cleared unless --keep-outputs / --keep-exec-counts
are given.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	includeMarkers, _ := cmd.Flags().GetBool("include-markers")
	keepOutputs, _ := cmd.Flags().GetBool("keep-outputs")
	keepExecCounts, _ := cmd.Flags().GetBool("keep-exec-counts")

	cfg := types.ExtractConfig{
		InputPath:      input,
		OutputPath:     stringSetting(cmd, "output", "extract.output"),
		StartMarker:    stringSetting(cmd, "start", "extract.start_marker"),
		EndMarker:      stringSetting(cmd, "end", "extract.end_marker"),
		IncludeMarkers: includeMarkers,
		KeepOutputs:    keepOutputs,
		KeepExecCounts: keepExecCounts,
	}

	return extract.Run(cfg, os.Stdout)
}

func init() {
	extractCmd.Flags().StringP("input", "i", "", "path to the full notebook (.ipynb)")
	extractCmd.Flags().StringP("output", "o", types.DefaultOutputPath, "output notebook path")
	extractCmd.Flags().String("start", types.DefaultStartMarker, "start marker line")
	extractCmd.Flags().String("end", types.DefaultEndMarker, "end marker line")
	extractCmd.Flags().Bool("include-markers", false, "include the marker cells themselves in the output")
	extractCmd.Flags().Bool("keep-outputs", false, "keep code cell outputs (default clears outputs)")
	extractCmd.Flags().Bool("keep-exec-counts", false, "keep execution counts (default clears execution counts)")
	extractCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(extractCmd)
}
