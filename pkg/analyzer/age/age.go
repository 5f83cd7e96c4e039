// Package age computes how long ago each group of log rows last changed.
package age

import (
	"sort"
	"time"

	"github.com/ImEagle/codemetrics/pkg/scm"
)

// KeyConfig determines which log columns become grouping dimensions when
// the caller does not name keys explicitly: every column except Excluded.
// Resolved once per call against the columns the log actually carries, so
// caller-defined columns (kind, a synthetic component) group automatically.
type KeyConfig struct {
	Excluded map[string]struct{}
}

// DefaultKeyConfig excludes the per-revision bookkeeping columns.
func DefaultKeyConfig() KeyConfig {
	return KeyConfig{Excluded: map[string]struct{}{
		scm.ColRevision: {},
		scm.ColAuthor:   {},
		scm.ColDate:     {},
		scm.ColTextMods: {},
		scm.ColAction:   {},
		scm.ColPropMods: {},
		scm.ColMessage:  {},
	}}
}

// Resolve returns the grouping keys for the log: its columns minus the
// excluded set, in column order.
func (c KeyConfig) Resolve(log *scm.Log) []string {
	var keys []string
	for _, col := range log.Columns() {
		if _, skip := c.Excluded[col]; !skip {
			keys = append(keys, col)
		}
	}
	return keys
}

// Analyzer computes age records from a revision log.
type Analyzer struct {
	keys   []string
	keyCfg KeyConfig
	clock  scm.Clock
	utc    bool
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithKeys sets the grouping keys explicitly, bypassing the key config.
func WithKeys(keys ...string) Option {
	return func(a *Analyzer) {
		a.keys = keys
	}
}

// WithKeyConfig replaces the column-exclusion set used for default keys.
func WithKeyConfig(cfg KeyConfig) Option {
	return func(a *Analyzer) {
		a.keyCfg = cfg
	}
}

// WithClock sets the current-time source (useful for testing).
func WithClock(clock scm.Clock) Option {
	return func(a *Analyzer) {
		a.clock = clock
	}
}

// WithReferenceTime fixes the reference time ages are measured against.
func WithReferenceTime(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

// WithUTC controls whether timestamps are converted to UTC before the
// elapsed time is taken. Defaults to true.
func WithUTC(utc bool) Option {
	return func(a *Analyzer) {
		a.utc = utc
	}
}

// New creates a new age analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		keyCfg: DefaultKeyConfig(),
		clock:  scm.Now,
		utc:    true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze groups the log by the configured keys, takes the most recent
// date per group and converts it to an age in fractional days relative to
// the analyzer's clock. The date column never survives into the output.
func (a *Analyzer) Analyze(log *scm.Log) (*Analysis, error) {
	keys := a.keys
	if keys == nil {
		keys = a.keyCfg.Resolve(log)
	}
	if err := log.RequireColumns(keys...); err != nil {
		return nil, err
	}

	latest := make(map[string]time.Time)
	values := make(map[string]map[string]string)
	var order []string
	for i := range log.Entries() {
		e := &log.Entries()[i]
		if e.Date.IsZero() {
			return nil, scm.ErrInvalidDate
		}
		k := scm.GroupKey(e, keys)
		if _, seen := latest[k]; !seen {
			order = append(order, k)
			vals := make(map[string]string, len(keys))
			for _, col := range keys {
				v, _ := e.Field(col)
				vals[col] = v
			}
			values[k] = vals
		}
		if e.Date.After(latest[k]) {
			latest[k] = e.Date
		}
	}
	sort.Strings(order)

	ref := a.clock()
	if a.utc {
		ref = ref.UTC()
	}
	analysis := &Analysis{Keys: keys, ReferenceTime: ref, Records: []Record{}}
	for _, k := range order {
		d := latest[k]
		if a.utc {
			d = d.UTC()
		}
		analysis.Records = append(analysis.Records, Record{
			Values: values[k],
			Age:    ref.Sub(d).Seconds() / (24 * 60 * 60),
		})
	}
	return analysis, nil
}
