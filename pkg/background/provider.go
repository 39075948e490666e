// Package background implements the image acquisition pipeline that keeps a
// local pool of viable wallpaper candidates, and the rotation machinery that
// periodically promotes one of them to the desktop background.
package background

import (
	"context"
	"errors"
)

// ErrSubredditNotFound is returned when a community name cannot be resolved by
// the content API. The task runner reacts by dropping the dead configuration.
var ErrSubredditNotFound = errors.New("subreddit not found")

// Submission is one remote content item with its media metadata. Produced by a
// ContentSource, consumed read-only by the filter and the fetcher. Never persisted.
type Submission struct {
	ID            string
	Domain        string // hosting domain of the linked media
	IsVideo       bool
	PreviewWidth  int
	PreviewHeight int
	PreviewURL    string
}

// CommunityHandle is a resolved community.
type CommunityHandle struct {
	Name    string
	IconURL string // may be empty if the community has no icon
}

// ContentSource is the thin authenticated handle to the remote content API.
type ContentSource interface {
	// Resolve resolves a community name, failing with ErrSubredditNotFound
	// when the community does not exist.
	Resolve(ctx context.Context, name string) (CommunityHandle, error)

	// TopPage returns one page of the community's top submissions within the
	// given window, ordered by descending popularity, together with the cursor
	// of the next page. An empty cursor means the feed is exhausted.
	TopPage(ctx context.Context, name string, window TimeWindow, after string, limit int) ([]Submission, string, error)
}

// SourceFactory builds a ContentSource from the current settings snapshot.
// The fetcher calls it on every fetch so credential changes take effect
// without a restart.
type SourceFactory func(Settings) (ContentSource, error)
