// Package vcs collects revision logs from git repositories.
package vcs

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// Opener opens git repositories.
type Opener interface {
	// PlainOpen opens an existing git repository.
	PlainOpen(path string) (Repository, error)
}

// Repository provides access to git repository operations.
type Repository interface {
	// Log returns a commit iterator starting from HEAD.
	Log(opts *LogOptions) (CommitIterator, error)
}

// LogOptions configures the commit log query.
type LogOptions struct {
	Since *time.Time
}

// CommitIterator iterates over commits.
type CommitIterator interface {
	ForEach(fn func(Commit) error) error
	Close()
}

// Commit represents a git commit.
type Commit interface {
	// Hash returns the commit hash as a hex string.
	Hash() string
	// Author returns commit author information.
	Author() object.Signature
	// Message returns the commit message.
	Message() string
	// Stats returns file stats for this commit.
	Stats() (object.FileStats, error)
}
