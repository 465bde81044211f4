package processor

import (
	"context"

	"twinpage/internal/grouping"
)

// Report is the outcome of a dedupe run.
type Report struct {
	Scan    *Scan
	Groups  []grouping.Group
	Copied  []string
	Summary Summary
}

// Dedupe groups the files of src by region-wise match and copies one file per
// group into dst. A copy failure aborts the run.
func Dedupe(ctx context.Context, src, dst string, opts Options, updates chan<- ProgressUpdate) (Report, error) {
	scan, summary, err := Run(ctx, src, opts, updates)
	report := Report{Scan: scan, Summary: summary}
	if err != nil {
		return report, err
	}

	report.Groups = grouping.ByRegion(scan.Regions)
	report.Summary.Groups = len(report.Groups)

	copied, err := CopyDistinct(src, dst, report.Groups)
	report.Copied = copied
	report.Summary.Copied = len(copied)
	return report, err
}
