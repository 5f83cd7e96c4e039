package vcs

import (
	"context"
	"strings"
	"time"

	"github.com/ImEagle/codemetrics/pkg/scm"
)

// Collector walks a repository's history and produces a revision log, one
// row per (commit, path) touched.
type Collector struct {
	days   int
	opener Opener
}

// Option is a functional option for configuring Collector.
type Option func(*Collector)

// WithDays limits collection to the last n days of history. Zero collects
// everything.
func WithDays(days int) Option {
	return func(c *Collector) {
		if days > 0 {
			c.days = days
		}
	}
}

// WithOpener sets the repository opener (useful for testing).
func WithOpener(opener Opener) Option {
	return func(c *Collector) {
		c.opener = opener
	}
}

// NewCollector creates a new log collector.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{opener: DefaultOpener()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CollectLog builds the revision log for a repository. Commit messages are
// flattened to a single line. Commits whose stats cannot be computed are
// skipped rather than failing the whole collection.
func (c *Collector) CollectLog(ctx context.Context, repoPath string) (*scm.Log, error) {
	repo, err := c.opener.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	opts := &LogOptions{}
	if c.days > 0 {
		since := time.Now().AddDate(0, 0, -c.days)
		opts.Since = &since
	}
	iter, err := repo.Log(opts)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []scm.Entry
	err = iter.ForEach(func(commit Commit) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		stats, err := commit.Stats()
		if err != nil {
			return nil
		}
		author := commit.Author()
		message := strings.ReplaceAll(strings.TrimSpace(commit.Message()), "\n", " ")
		for _, stat := range stats {
			entries = append(entries, scm.Entry{
				Revision: commit.Hash(),
				Path:     stat.Name,
				Date:     author.When.UTC(),
				Author:   author.Name,
				Message:  message,
				Kind:     "file",
				TextMods: stat.Addition+stat.Deletion > 0,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scm.NewLog(entries), nil
}
