// Package cochange measures how often paths change within the same
// grouping unit, a revision by default.
package cochange

import (
	"sort"

	"github.com/ImEagle/codemetrics/pkg/scm"
)

// Analyzer computes directional coupling between paths. For a pair (A, B),
// coupling is the fraction of A's units that also touched B; the reverse
// direction is a separate row with its own denominator.
type Analyzer struct {
	by string
	on string
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithGroupBy sets the aggregation column, path by default.
func WithGroupBy(by string) Option {
	return func(a *Analyzer) {
		a.by = by
	}
}

// WithJoinOn sets the grouping-unit column, revision by default. A
// calendar-day or ticket-id column widens what counts as "together".
func WithJoinOn(on string) Option {
	return func(a *Analyzer) {
		a.on = on
	}
}

// New creates a new co-change analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{by: scm.ColPath, on: scm.ColRevision}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze dedupes the log to one row per (unit, path), self-joins on the
// unit and counts shared units per ordered pair. Duplicate (unit, path)
// rows in the input collapse before pairing, so repeats never inflate the
// counts. The result is sorted by coupling descending.
func (a *Analyzer) Analyze(log *scm.Log) (*Analysis, error) {
	if err := log.RequireColumns(a.on, a.by); err != nil {
		return nil, err
	}

	// One row per unit-touches-path, keeping first-appearance order so
	// the output is stable for equal couplings.
	units := make(map[string][]string)
	inUnit := make(map[string]map[string]struct{})
	changes := make(map[string]int)
	var pathOrder []string
	for i := range log.Entries() {
		e := &log.Entries()[i]
		unit, _ := e.Field(a.on)
		path, _ := e.Field(a.by)
		if inUnit[unit] == nil {
			inUnit[unit] = make(map[string]struct{})
		}
		if _, dup := inUnit[unit][path]; dup {
			continue
		}
		inUnit[unit][path] = struct{}{}
		units[unit] = append(units[unit], path)
		if changes[path] == 0 {
			pathOrder = append(pathOrder, path)
		}
		changes[path]++
	}

	// Self-join per unit: count shared units for every ordered pair.
	cochanges := make(map[[2]string]int)
	for _, paths := range units {
		for _, p := range paths {
			for _, s := range paths {
				if p != s {
					cochanges[[2]string{p, s}]++
				}
			}
		}
	}

	analysis := &Analysis{By: a.by, On: a.on, Pairs: []CoChange{}}
	for _, p := range pathOrder {
		for _, s := range pathOrder {
			count, ok := cochanges[[2]string{p, s}]
			if !ok {
				continue
			}
			analysis.Pairs = append(analysis.Pairs, CoChange{
				Primary:   p,
				Secondary: s,
				CoChanges: count,
				Changes:   changes[p],
				Coupling:  float64(count) / float64(changes[p]),
			})
		}
	}
	sort.SliceStable(analysis.Pairs, func(i, j int) bool {
		return analysis.Pairs[i].Coupling > analysis.Pairs[j].Coupling
	})
	return analysis, nil
}
