package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"twinpage/internal/processor"
	"twinpage/internal/tui"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe [flags] <folder>",
	Short: "Copy one file per region-wise duplicate group to an output folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}

		var report processor.Report
		err = withProgress(func(ctx context.Context, updates chan<- processor.ProgressUpdate) error {
			var runErr error
			report, runErr = processor.Dedupe(ctx, cfg.Source, cfg.Output, processor.NewOptions(cfg, log), updates)
			return runErr
		})
		if errors.Is(err, context.Canceled) {
			return err
		}

		outPath := cfg.Output
		if abs, absErr := filepath.Abs(cfg.Output); absErr == nil {
			outPath = abs
		}

		fmt.Fprintln(os.Stdout, tui.FileStyle.Render("Region-wise duplicate groups (all regions must match):"))
		fmt.Fprintln(os.Stdout, tui.RenderGroups(report.Groups))
		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stdout, "Copying distinct files to '%s'...\n", outPath)
		fmt.Fprintln(os.Stdout, tui.RenderList("Copied files:", report.Copied))
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, tui.RenderSummary(tui.SummaryRows(report.Summary)))
		return nil
	},
}

func init() {
	dedupeCmd.Flags().StringP("output", "o", "", "destination folder (default: distinct_files next to <folder>)")
	rootCmd.AddCommand(dedupeCmd)
}
