package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"twinpage/internal/processor"
	"twinpage/internal/tui"
)

var (
	findTransitive bool
	findLegacy     bool
)

var findCmd = &cobra.Command{
	Use:   "find [flags] <folder> <file>",
	Short: "Show the duplicate group a file belongs to",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}
		opts := processor.NewOptions(cfg, log)
		name := args[1]

		if findLegacy {
			dups, err := processor.FindDuplicatesForFile(context.Background(), cfg.Source, name, cfg.Threshold, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Duplicates for '%s': [%s]\n", name, strings.Join(dups, ", "))
			return nil
		}

		lookup, err := processor.LookupFile(context.Background(), cfg.Source, name, cfg.Threshold, findTransitive, opts)
		if err != nil {
			return err
		}

		switch lookup.Status {
		case processor.NotFound:
			fmt.Fprintf(os.Stdout, "%s %s\n", tui.FileStyle.Render(name), tui.WarnStyle.Render("not found or could not be rendered"))
		case processor.Unique:
			fmt.Fprintf(os.Stdout, "%s %s\n", tui.FileStyle.Render(name), tui.OKStyle.Render("has no duplicates"))
		case processor.Duplicated:
			fmt.Fprintln(os.Stdout, tui.RenderList(fmt.Sprintf("%s is in a group of %d (seed %s):", name, len(lookup.Group), lookup.Group.Seed()), lookup.Group))
		}
		return nil
	},
}

func init() {
	findCmd.Flags().BoolVar(&findTransitive, "transitive", false, "merge chains of similar files into one group")
	findCmd.Flags().BoolVar(&findLegacy, "legacy", false, "print a plain list, empty for both unique and missing files")
	rootCmd.AddCommand(findCmd)
}
