// Package complexity retrieves per-function complexity metrics for every
// (revision, path) pair of a revision log. Both the file download and the
// metrics extraction are supplied by the caller; this package only owns the
// fan-out and the resulting table shape.
package complexity

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/ImEagle/codemetrics/pkg/scm"
)

// DownloadFunc retrieves the content of a path at a revision.
type DownloadFunc func(ctx context.Context, revision, path string) (string, error)

// ExtractFunc computes per-function metrics from file content.
type ExtractFunc func(content string) (FileStats, error)

// Analyzer fans downloads out over a bounded worker pool and flattens the
// extracted metrics into one row per function.
type Analyzer struct {
	workers  int
	download DownloadFunc
	extract  ExtractFunc
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithWorkers bounds the download concurrency. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// New creates a new complexity analyzer around the caller's download and
// extraction functions.
func New(download DownloadFunc, extract ExtractFunc, opts ...Option) *Analyzer {
	a := &Analyzer{
		workers:  runtime.GOMAXPROCS(0),
		download: download,
		extract:  extract,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze processes each distinct (revision, path) pair of the log once, in
// log order. An empty log yields an empty analysis. The first download or
// extraction failure fails the whole call.
func (a *Analyzer) Analyze(ctx context.Context, log *scm.Log) (*Analysis, error) {
	type pair struct{ revision, path string }
	var pairs []pair
	seen := make(map[pair]struct{})
	for i := range log.Entries() {
		e := &log.Entries()[i]
		p := pair{revision: e.Revision, path: e.Path}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}

	stats := make([]FileStats, len(pairs))
	p := pool.New().WithMaxGoroutines(a.workers).WithContext(ctx)
	for i := range pairs {
		i := i
		p.Go(func(ctx context.Context) error {
			content, err := a.download(ctx, pairs[i].revision, pairs[i].path)
			if err != nil {
				return fmt.Errorf("downloading %s@%s: %w", pairs[i].path, pairs[i].revision, err)
			}
			stats[i], err = a.extract(content)
			if err != nil {
				return fmt.Errorf("extracting %s@%s: %w", pairs[i].path, pairs[i].revision, err)
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	analysis := &Analysis{Rows: []Row{}}
	for i, pr := range pairs {
		for fn, m := range stats[i].Functions {
			analysis.Rows = append(analysis.Rows, Row{
				Revision:        pr.revision,
				Path:            pr.path,
				Function:        fn,
				FunctionMetrics: m,
				FileTokens:      stats[i].FileTokens,
				FileNLOC:        stats[i].FileNLOC,
			})
		}
	}
	return analysis, nil
}
