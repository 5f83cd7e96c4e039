// Package scm defines the in-memory revision-log and size tables consumed
// by the analyzers, along with the schema checks shared between them.
package scm

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// ErrMissingColumn is returned when an analyzer needs a column the log
// does not carry. Wrap it with the column name via MissingColumn.
var ErrMissingColumn = errors.New("missing column")

// ErrInvalidDate is returned when a log entry carries a zero timestamp.
var ErrInvalidDate = errors.New("invalid date")

// MissingColumn builds a schema error for the named column.
func MissingColumn(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, name)
}

// Built-in column names of the revision log.
const (
	ColRevision = "revision"
	ColPath     = "path"
	ColDate     = "date"
	ColAuthor   = "author"
	ColMessage  = "message"
	ColKind     = "kind"
	ColAction   = "action"
	ColTextMods = "textmods"
	ColPropMods = "propmods"
)

// Entry is one revision-log row: a single path touched by a revision.
// Extra holds caller-defined columns (a calendar day, a ticket id, a
// synthetic component) that analyzers can group on by name.
type Entry struct {
	Revision string
	Path     string
	Date     time.Time
	Author   string
	Message  string
	Kind     string
	Action   string
	TextMods bool
	PropMods bool
	Extra    map[string]string
}

// Field resolves a column name on the entry to its string form. Dates are
// rendered in RFC 3339 so they group and compare consistently. The second
// return is false when the entry has no such column.
func (e *Entry) Field(name string) (string, bool) {
	switch name {
	case ColRevision:
		return e.Revision, true
	case ColPath:
		return e.Path, true
	case ColDate:
		return e.Date.Format(time.RFC3339Nano), true
	case ColAuthor:
		return e.Author, true
	case ColMessage:
		return e.Message, true
	case ColKind:
		return e.Kind, true
	case ColAction:
		return e.Action, true
	case ColTextMods:
		return strconv.FormatBool(e.TextMods), true
	case ColPropMods:
		return strconv.FormatBool(e.PropMods), true
	}
	v, ok := e.Extra[name]
	return v, ok
}

// Log is a normalized revision-log table. Construct it with NewLog so the
// analyzers only ever see column-addressable rows, regardless of how the
// producer keyed them.
type Log struct {
	entries []Entry
	extra   []string // sorted caller-defined column names
}

// NewLog builds a log from entries. The entry slice is copied; callers may
// keep mutating theirs.
func NewLog(entries []Entry) *Log {
	l := &Log{entries: make([]Entry, len(entries))}
	copy(l.entries, entries)

	seen := map[string]struct{}{}
	for i := range l.entries {
		for k := range l.entries[i].Extra {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				l.extra = append(l.extra, k)
			}
		}
	}
	sort.Strings(l.extra)
	return l
}

// Len returns the number of rows.
func (l *Log) Len() int { return len(l.entries) }

// Entries returns the underlying rows. The slice must not be mutated.
func (l *Log) Entries() []Entry { return l.entries }

// Columns returns the column names present in the log: the built-in set,
// followed by the sorted caller-defined columns.
func (l *Log) Columns() []string {
	cols := []string{
		ColRevision, ColPath, ColDate, ColAuthor, ColMessage,
		ColKind, ColAction, ColTextMods, ColPropMods,
	}
	return append(cols, l.extra...)
}

// HasColumn reports whether name resolves on this log.
func (l *Log) HasColumn(name string) bool {
	switch name {
	case ColRevision, ColPath, ColDate, ColAuthor, ColMessage,
		ColKind, ColAction, ColTextMods, ColPropMods:
		return true
	}
	for _, k := range l.extra {
		if k == name {
			return true
		}
	}
	return false
}

// RequireColumns fails fast when any of the named columns is absent.
func (l *Log) RequireColumns(names ...string) error {
	for _, name := range names {
		if !l.HasColumn(name) {
			return MissingColumn(name)
		}
	}
	return nil
}

// GroupKey joins the values of the named columns for grouping. The caller
// must have verified column presence with RequireColumns.
func GroupKey(e *Entry, cols []string) string {
	const sep = "\x1f"
	key := ""
	for i, c := range cols {
		v, _ := e.Field(c)
		if i > 0 {
			key += sep
		}
		key += v
	}
	return key
}

// Clock yields the current time. Analyzers that compute elapsed time take
// one so tests can pin it.
type Clock func() time.Time

// Now is the default clock.
func Now() time.Time { return time.Now().UTC() }
