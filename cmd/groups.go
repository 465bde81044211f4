package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twinpage/internal/grouping"
	"twinpage/internal/processor"
	"twinpage/internal/tui"
)

var groupsTransitive bool

var groupsCmd = &cobra.Command{
	Use:   "groups [flags] <folder>",
	Short: "Report whole-page duplicate groups without copying anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}

		var scan *processor.Scan
		var summary processor.Summary
		err = withProgress(func(ctx context.Context, updates chan<- processor.ProgressUpdate) error {
			var runErr error
			scan, summary, runErr = processor.Run(ctx, cfg.Source, processor.NewOptions(cfg, log), updates)
			return runErr
		})
		if err != nil {
			return err
		}

		groups := processor.GroupHashes(scan, cfg.Threshold, groupsTransitive)
		summary.Groups = groups.Len()

		fmt.Fprintln(os.Stdout, tui.FileStyle.Render(fmt.Sprintf("Whole-page duplicate groups (distance <= %d):", cfg.Threshold)))
		fmt.Fprintln(os.Stdout, tui.RenderGroups(groups.List()))
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, tui.RenderList("Originals:", grouping.Originals(scan.Hashes, groups)))
		fmt.Fprintln(os.Stdout, tui.RenderList("Duplicates:", grouping.Duplicates(scan.Hashes, groups)))
		fmt.Fprintln(os.Stdout, tui.RenderSummary(tui.SummaryRows(summary)))
		return nil
	},
}

func init() {
	groupsCmd.Flags().BoolVar(&groupsTransitive, "transitive", false, "merge chains of similar files into one group")
	rootCmd.AddCommand(groupsCmd)
}
