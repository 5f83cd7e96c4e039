// Package testutil provides shared fixtures for analyzer tests: a small
// revision log with two files, its size table, and a path list with a
// known directory structure for clustering.
package testutil

import (
	"time"

	"github.com/ImEagle/codemetrics/pkg/scm"
)

// MustTime parses an RFC 3339 timestamp or panics. Test-only helper.
func MustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleLog returns a log where revision 1016 touched one path and
// revision 1018 touched two.
func SampleLog() *scm.Log {
	return scm.NewLog(SampleEntries())
}

// SampleEntries returns the rows behind SampleLog for tests that want to
// extend them before building the log.
func SampleEntries() []scm.Entry {
	return []scm.Entry{
		{
			Revision: "1016",
			Path:     "stats.py",
			Date:     MustTime("2018-02-26T10:28:00Z"),
			Author:   "elmotec",
			Message:  "modified again",
			Kind:     "file",
			Action:   "M",
			TextMods: true,
		},
		{
			Revision: "1018",
			Path:     "stats.py",
			Date:     MustTime("2018-02-24T11:14:11Z"),
			Author:   "elmotec",
			Message:  "modified",
			Kind:     "file",
			Action:   "M",
			TextMods: true,
		},
		{
			Revision: "1018",
			Path:     "requirements.txt",
			Date:     MustTime("2018-02-24T11:14:11Z"),
			Author:   "elmotec",
			Message:  "modified",
			Kind:     "file",
			Action:   "M",
			TextMods: true,
		},
	}
}

// SampleSizes returns the size table matching SampleLog.
func SampleSizes() *scm.SizeTable {
	return scm.NewSizeTable([]scm.SizeEntry{
		{Path: "stats.py", Language: "Python", Blank: 28, Comment: 84, Code: 100},
		{Path: "requirements.txt", Language: "Unknown", Blank: 0, Comment: 0, Code: 3},
	})
}

// ClusteredPaths returns paths with a clear two-group directory split.
func ClusteredPaths() []string {
	return []string{
		"parsers/git.clj",
		"parsers/mercurial.clj",
		"parsers/perforce.clj",
		"parsers/svn.clj",
		"parsers/tfs.clj",
		"analysis/authors.clj",
		"analysis/churn.clj",
		"analysis/coupling.clj",
		"analysis/effort.clj",
		"analysis/entities.clj",
	}
}
