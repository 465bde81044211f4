package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"twinpage/internal/fingerprint"
	"twinpage/internal/processor"
	"twinpage/internal/tui"
)

var hashesTarget string

var hashesCmd = &cobra.Command{
	Use:   "hashes [flags] <folder>",
	Short: "Print first-page hashes and pairwise distances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd, args[0])
		if err != nil {
			return err
		}

		scan, _, err := processor.Run(context.Background(), cfg.Source, processor.NewOptions(cfg, log), nil)
		if err != nil {
			return err
		}

		if hashesTarget != "" {
			return printRegionDistances(scan, hashesTarget)
		}

		fmt.Fprintln(os.Stdout, tui.FileStyle.Render("File name and perceptual hash (in hex):"))
		for _, e := range scan.Hashes.Entries() {
			pages := "?"
			if n, err := processor.PageCount(scan.Path(e.Name)); err == nil {
				pages = fmt.Sprintf("%d", n)
			} else {
				log.WithField("file", e.Name).WithError(err).Debug("page count unavailable")
			}
			detail := fmt.Sprintf("(%s, %s pages)", scan.Kinds[e.Name], pages)
			fmt.Fprintf(os.Stdout, "%s : %s %s\n", e.Name, e.Value, tui.DimStyle.Render(detail))
		}

		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, tui.FileStyle.Render("Pairwise Hamming distances:"))
		entries := scan.Hashes.Entries()
		for i := range entries {
			for j := i + 1; j < len(entries); j++ {
				fmt.Fprintf(os.Stdout, "%s <-> %s : %d\n", entries[i].Name, entries[j].Name, fingerprint.Distance(entries[i].Value, entries[j].Value))
			}
		}
		return nil
	},
}

func printRegionDistances(scan *processor.Scan, target string) error {
	base, ok := scan.Regions.Get(target)
	if !ok {
		return fmt.Errorf("target file not found: %s", target)
	}

	names := scan.Regions.Names()
	sort.Strings(names)

	fmt.Fprintln(os.Stdout, tui.FileStyle.Render(fmt.Sprintf("Comparing '%s' to all other files, region-wise Hamming distances:", target)))
	for _, name := range names {
		if name == target {
			continue
		}
		other, _ := scan.Regions.Get(name)
		d := fingerprint.CompareRegions(base, other)
		fmt.Fprintf(os.Stdout, "%s <-> %s : top=%d, middle=%d, bottom=%d\n",
			target, name, d[fingerprint.Top], d[fingerprint.Middle], d[fingerprint.Bottom])
	}
	return nil
}

func init() {
	hashesCmd.Flags().StringVar(&hashesTarget, "regions", "", "compare the region hashes of this file against every other file")
	rootCmd.AddCommand(hashesCmd)
}
