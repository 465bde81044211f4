package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"twinpage/internal/config"
	"twinpage/internal/fingerprint"
	"twinpage/internal/grouping"
	"twinpage/pkg/imgutil"
	"twinpage/pkg/logging"
)

// NewOptions builds scan options from a resolved configuration.
func NewOptions(cfg config.Config, log *logrus.Logger) Options {
	return Options{
		Workers:    cfg.Workers,
		DPI:        cfg.DPI,
		Extensions: cfg.Extensions,
		Images:     cfg.Images,
		Renderer:   NewRenderer(),
		Log:        log,
	}
}

// ListFiles returns the regular files in root whose extension is accepted by
// opts, sorted by name. A missing folder yields no files.
func ListFiles(root string, opts Options) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".pdf"}
	}
	if opts.Images {
		exts = append(append([]string{}, exts...), imgutil.RasterExtensions...)
	}

	var names []string
	for _, entry := range entries {
		if !imgutil.HasExtension(entry.Name(), exts) {
			continue
		}
		if !isRegular(root, entry) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// isRegular follows symlinks so a linked document is listed like its target.
func isRegular(root string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

// Run fingerprints the first page of every accepted file in root. Files that
// fail to render are logged and left out of the index; they never abort the
// run. The index order is the sorted file order regardless of worker count.
// A cancelled ctx fails the whole run with ctx.Err().
func Run(ctx context.Context, root string, opts Options, updates chan<- ProgressUpdate) (*Scan, Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewRenderer()
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = config.DefaultDPI
	}

	scan := &Scan{
		Root:    root,
		Hashes:  grouping.NewIndex[fingerprint.Hash](),
		Regions: grouping.NewIndex[fingerprint.RegionSet](),
		Kinds:   make(map[string]imgutil.Kind),
	}
	summary := Summary{}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		log.WithField("folder", root).Warn("source folder is missing or not a directory")
		return scan, summary, nil
	}

	names, err := ListFiles(root, opts)
	if err != nil {
		return scan, summary, err
	}
	if len(names) == 0 {
		return scan, summary, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(names) {
		workers = len(names)
	}

	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(names)}
	}

	jobs := make(chan Job)
	results := make(chan Result)
	ordered := make([]*Result, len(names))

	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for res := range results {
			ordered[res.Index] = &res
			summary.Total++
			if res.Err != nil {
				summary.Errors++
				log.WithField("file", res.Name).WithError(res.Err).Warn("failed to fingerprint")
				if updates != nil {
					updates <- ProgressUpdate{ErrorDelta: 1}
				}
				continue
			}
			summary.Fingerprinted++
			if updates != nil {
				updates <- ProgressUpdate{ProcessedDelta: 1}
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i, name := range names {
			job := Job{Index: i, Path: filepath.Join(root, name), Name: name}
			select {
			case jobs <- job:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			worker(gctx, jobs, results, renderer, dpi)
			return nil
		})
	}

	waitErr := g.Wait()
	close(results)
	<-collectorDone

	for _, res := range ordered {
		if res == nil {
			continue
		}
		if res.Err != nil {
			scan.Failures = append(scan.Failures, Failure{Name: res.Name, Err: res.Err})
			continue
		}
		scan.Hashes.Put(res.Name, res.Hash)
		scan.Regions.Put(res.Name, res.Regions)
		scan.Kinds[res.Name] = res.Kind
	}

	if waitErr != nil {
		return scan, summary, waitErr
	}
	if err := ctx.Err(); err != nil {
		return scan, summary, err
	}
	return scan, summary, nil
}

func worker(ctx context.Context, jobs <-chan Job, results chan<- Result, renderer Renderer, dpi float64) {
	for job := range jobs {
		if ctx.Err() != nil {
			return
		}
		results <- fingerprintFile(ctx, job, renderer, dpi)
	}
}

func fingerprintFile(ctx context.Context, job Job, renderer Renderer, dpi float64) Result {
	res := Result{Index: job.Index, Name: job.Name}

	kind, err := imgutil.SniffFile(job.Path)
	if err != nil {
		res.Err = fmt.Errorf("sniff: %w", err)
		return res
	}
	res.Kind = kind

	img, err := renderer.Render(ctx, job.Path, FirstPage, dpi)
	if err != nil {
		res.Err = fmt.Errorf("render: %w", err)
		return res
	}

	res.Hash = fingerprint.Average(img)
	res.Regions = fingerprint.RegionHashes(img)
	return res
}
