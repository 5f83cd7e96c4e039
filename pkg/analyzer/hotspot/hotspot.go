// Package hotspot ranks paths that are both complex and change often.
package hotspot

import (
	"sort"

	"github.com/ImEagle/codemetrics/pkg/scm"
	"github.com/ImEagle/codemetrics/pkg/stats"
)

// Analyzer crosses a size/complexity table with change frequency from the
// revision log. Each metric is min-max scaled to [0, 1] and squared; the
// hot-spot score is the sum of the two, so it ranges over [0, 2].
type Analyzer struct {
	by          string
	countOnePer []string
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithGroupBy sets the aggregation column, path by default.
func WithGroupBy(by string) Option {
	return func(a *Analyzer) {
		a.by = by
	}
}

// WithCountOneChangePer sets the columns that define "one change". The
// default, revision, counts each revision once; grouping by a calendar day
// or a ticket id instead collapses revisions sharing that value.
func WithCountOneChangePer(cols ...string) Option {
	return func(a *Analyzer) {
		a.countOnePer = cols
	}
}

// New creates a new hot-spot analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		by:          scm.ColPath,
		countOnePer: []string{scm.ColRevision},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze outer-merges the size table with change counts derived from the
// log. Keys present in only one input still appear, with the other metric
// at zero; an empty log therefore passes the size table through unscored on
// the changes side. Inputs are never mutated.
func (a *Analyzer) Analyze(log *scm.Log, sizes *scm.SizeTable) (*Analysis, error) {
	cols := append(append([]string{}, a.countOnePer...), a.by)
	if err := log.RequireColumns(cols...); err != nil {
		return nil, err
	}

	// One change per distinct (countOnePer..., by) combination.
	seen := make(map[string]struct{})
	changes := make(map[string]float64)
	for i := range log.Entries() {
		e := &log.Entries()[i]
		combo := scm.GroupKey(e, cols)
		if _, dup := seen[combo]; dup {
			continue
		}
		seen[combo] = struct{}{}
		key, _ := e.Field(a.by)
		changes[key]++
	}

	// Outer merge: size rows first, then change-only keys by count
	// descending (name ascending on ties) for a stable order.
	spots := make([]HotSpot, 0, sizes.Len())
	matched := make(map[string]struct{})
	for i := range sizes.Entries() {
		s := &sizes.Entries()[i]
		key, ok := s.Field(a.by)
		if !ok {
			return nil, scm.MissingColumn(a.by)
		}
		matched[key] = struct{}{}
		spots = append(spots, HotSpot{
			Path:       key,
			Language:   s.Language,
			Blank:      s.Blank,
			Comment:    s.Comment,
			Extra:      s.Extra,
			Complexity: s.Code,
			Changes:    changes[key],
		})
	}
	var unmatched []string
	for key := range changes {
		if _, ok := matched[key]; !ok {
			unmatched = append(unmatched, key)
		}
	}
	sort.Slice(unmatched, func(i, j int) bool {
		if changes[unmatched[i]] != changes[unmatched[j]] {
			return changes[unmatched[i]] > changes[unmatched[j]]
		}
		return unmatched[i] < unmatched[j]
	})
	for _, key := range unmatched {
		spots = append(spots, HotSpot{Path: key, Changes: changes[key]})
	}

	// Scale each metric over the merged column, then square.
	complexityCol := make([]float64, len(spots))
	changesCol := make([]float64, len(spots))
	for i := range spots {
		complexityCol[i] = spots[i].Complexity
		changesCol[i] = spots[i].Changes
	}
	complexityCol = stats.MinMaxScale(complexityCol)
	changesCol = stats.MinMaxScale(changesCol)
	for i := range spots {
		spots[i].ComplexityScore = complexityCol[i] * complexityCol[i]
		spots[i].ChangesScore = changesCol[i] * changesCol[i]
		spots[i].Score = spots[i].ComplexityScore + spots[i].ChangesScore
	}

	return &Analysis{By: a.by, CountOneChangePer: a.countOnePer, Spots: spots}, nil
}
