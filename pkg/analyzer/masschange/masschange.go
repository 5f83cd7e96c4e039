// Package masschange extracts revisions that touched unusually many paths.
package masschange

import (
	"github.com/ImEagle/codemetrics/pkg/scm"
)

// DefaultMinChanges is the path-count threshold above which a revision
// counts as a mass change.
const DefaultMinChanges = 1

// Analyzer extracts mass changesets from a revision log.
type Analyzer struct {
	minChanges int
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithMinChanges sets the path-count threshold. Revisions qualify only when
// they touched strictly more paths than the threshold.
func WithMinChanges(n int) Option {
	return func(a *Analyzer) {
		a.minChanges = n
	}
}

// New creates a new mass-change analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{minChanges: DefaultMinChanges}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze counts the paths touched by each revision and returns the
// revisions above the threshold, with message and author joined back from
// the log. Each row of the log counts; callers that can legitimately repeat
// a (revision, path) pair must dedupe first. A threshold nothing reaches
// yields an empty analysis, not an error.
func (a *Analyzer) Analyze(log *scm.Log) (*Analysis, error) {
	pathCounts := make(map[string]int)
	var order []string
	for i := range log.Entries() {
		e := &log.Entries()[i]
		if _, seen := pathCounts[e.Revision]; !seen {
			order = append(order, e.Revision)
		}
		pathCounts[e.Revision]++
	}

	// Distinct (revision, message, author) triples in log order.
	type meta struct{ message, author string }
	metas := make(map[string][]meta)
	for i := range log.Entries() {
		e := &log.Entries()[i]
		m := meta{message: e.Message, author: e.Author}
		dup := false
		for _, prev := range metas[e.Revision] {
			if prev == m {
				dup = true
				break
			}
		}
		if !dup {
			metas[e.Revision] = append(metas[e.Revision], m)
		}
	}

	analysis := &Analysis{MinChanges: a.minChanges, Changes: []MassChange{}}
	for _, rev := range order {
		count := pathCounts[rev]
		if count <= a.minChanges {
			continue
		}
		for _, m := range metas[rev] {
			analysis.Changes = append(analysis.Changes, MassChange{
				Revision:  rev,
				PathCount: count,
				Message:   m.message,
				Author:    m.author,
			})
		}
	}
	return analysis, nil
}
