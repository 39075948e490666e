// Package reddit implements the background.ContentSource against the reddit API.
package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cjelland/redwall/pkg/background"
	"github.com/loganintech/go-reddit/v2/reddit"
	"golang.org/x/time/rate"
)

// Client is a thin authenticated handle to the reddit API. It reuses the
// go-reddit transport for OAuth but owns its listing types, since the typed
// services do not surface preview media metadata.
type Client struct {
	rc      *reddit.Client
	limiter *rate.Limiter
}

// NewSource is a background.SourceFactory building a Client from the current
// settings snapshot.
func NewSource(settings background.Settings) (background.ContentSource, error) {
	return NewClient(settings.ClientID, settings.ClientSecret, settings.UserAgent)
}

// NewClient creates a client with application credentials.
func NewClient(clientID, clientSecret, userAgent string) (*Client, error) {
	creds := reddit.Credentials{ID: clientID, Secret: clientSecret}

	rc, err := reddit.NewClient(creds, reddit.WithUserAgent(userAgent))
	if err != nil {
		return nil, fmt.Errorf("failed to create reddit client: %w", err)
	}

	// Token bucket keeping us well under reddit's ~60 requests/minute.
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &Client{rc: rc, limiter: limiter}, nil
}

// Resolve resolves a subreddit by name and returns its handle including the
// community icon URL. A missing subreddit yields background.ErrSubredditNotFound.
func (c *Client) Resolve(ctx context.Context, name string) (background.CommunityHandle, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return background.CommunityHandle{}, err
	}

	req, err := c.rc.NewRequest(http.MethodGet, fmt.Sprintf("r/%s/about?raw_json=1", name), nil)
	if err != nil {
		return background.CommunityHandle{}, fmt.Errorf("failed to create about request: %w", err)
	}

	var about aboutResponse
	if _, err := c.rc.Do(ctx, req, &about); err != nil {
		if isNotFound(err) {
			return background.CommunityHandle{}, background.ErrSubredditNotFound
		}
		return background.CommunityHandle{}, fmt.Errorf("about request failed: %w", err)
	}

	// A nonexistent name can also come back as a non-subreddit thing.
	if about.Kind != subredditKind || about.Data.DisplayName == "" {
		return background.CommunityHandle{}, background.ErrSubredditNotFound
	}

	return background.CommunityHandle{
		Name:    about.Data.DisplayName,
		IconURL: about.iconURL(),
	}, nil
}

// TopPage fetches one page of the subreddit's top listing within the window.
// The returned cursor is empty once the feed is exhausted.
func (c *Client) TopPage(ctx context.Context, name string, window background.TimeWindow, after string, limit int) ([]background.Submission, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	q := url.Values{}
	q.Set("t", string(window))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}

	req, err := c.rc.NewRequest(http.MethodGet, fmt.Sprintf("r/%s/top?%s", name, q.Encode()), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create listing request: %w", err)
	}

	var listing listingResponse
	if _, err := c.rc.Do(ctx, req, &listing); err != nil {
		if isNotFound(err) {
			return nil, "", background.ErrSubredditNotFound
		}
		return nil, "", fmt.Errorf("top listing request failed: %w", err)
	}

	subs := make([]background.Submission, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		subs = append(subs, child.Data.toSubmission())
	}
	return subs, listing.Data.After, nil
}

func isNotFound(err error) bool {
	var apiErr *reddit.ErrorResponse
	return errors.As(err, &apiErr) && apiErr.Response != nil &&
		apiErr.Response.StatusCode == http.StatusNotFound
}
