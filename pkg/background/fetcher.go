package background

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/cjelland/redwall/util/log"
)

// Fetcher orchestrates one fetch per subreddit configuration: it pages the
// community's top feed, filters candidates against the current display
// geometry and blacklist, and downloads the accepted images into the pool.
type Fetcher struct {
	newSource   SourceFactory
	pool        *Pool
	settings    *SettingsStore
	detector    GeometryDetector
	httpClient  *http.Client
	defaultIcon []byte
}

// NewFetcher creates a fetcher. defaultIcon is stored for communities whose
// own icon cannot be retrieved.
func NewFetcher(newSource SourceFactory, pool *Pool, settings *SettingsStore, detector GeometryDetector, defaultIcon []byte) *Fetcher {
	return &Fetcher{
		newSource:   newSource,
		pool:        pool,
		settings:    settings,
		detector:    detector,
		httpClient:  &http.Client{Timeout: DownloadTimeout},
		defaultIcon: defaultIcon,
	}
}

// Fetch runs the pipeline for one configuration and returns the filenames
// written to the pool. It fails fast with ErrSubredditNotFound when the
// community cannot be resolved; every per-submission problem is logged and
// skipped. Reaching the end of the feed with fewer images than requested is
// not an error.
func (f *Fetcher) Fetch(ctx context.Context, cfg SubredditConfig) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Fresh settings every run: the blacklist may have grown since the task
	// was enqueued, and credential edits must take effect without a restart.
	settings, err := f.settings.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	window, err := ParseWindowLabel(cfg.WindowLabel)
	if err != nil {
		return nil, err
	}

	source, err := f.newSource(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create content source: %w", err)
	}

	geo, err := f.detector.Detect()
	if err != nil {
		return nil, err
	}

	handle, err := source.Resolve(ctx, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve r/%s: %w", cfg.Name, err)
	}

	blacklist := settings.BlacklistSet()

	var written []string
	examined := 0
	after := ""

	for len(written) < cfg.Limit && examined < FeedLookupLimit {
		pageSize := feedPageSize
		if remaining := FeedLookupLimit - examined; remaining < pageSize {
			pageSize = remaining
		}

		subs, next, err := source.TopPage(ctx, handle.Name, window, after, pageSize)
		if err != nil {
			log.Printf("Fetch r/%s: feed page failed, stopping early: %v", handle.Name, err)
			break
		}

		for _, sub := range subs {
			if len(written) >= cfg.Limit || examined >= FeedLookupLimit {
				break
			}
			examined++

			if !IsViable(sub, handle.Name, geo, blacklist) {
				continue
			}

			filename, err := f.download(ctx, handle.Name, sub)
			if err != nil {
				log.Printf("Fetch r/%s: skipping submission %s: %v", handle.Name, sub.ID, err)
				continue
			}
			written = append(written, filename)
		}

		if next == "" || len(subs) == 0 {
			break
		}
		after = next
	}

	f.storeIcon(ctx, handle)

	log.Printf("Fetch r/%s: accepted %d of %d requested (%d submissions examined)",
		handle.Name, len(written), cfg.Limit, examined)
	return written, nil
}

// Refetch clears the community's pooled files and then runs Fetch. Used when a
// configuration is re-saved: a shrunk count must not leave surplus images from
// the earlier, larger fetch behind.
func (f *Fetcher) Refetch(ctx context.Context, cfg SubredditConfig) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := f.pool.Remove(cfg.Name); err != nil {
		return nil, fmt.Errorf("failed to clear images of r/%s: %w", cfg.Name, err)
	}
	return f.Fetch(ctx, cfg)
}

// download retrieves a submission's preview image into the pool. Each download
// carries its own timeout so one stuck transfer cannot stall the whole task.
func (f *Fetcher) download(ctx context.Context, community string, sub Submission) (string, error) {
	dctx, cancel := context.WithTimeout(ctx, DownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(dctx, http.MethodGet, sub.PreviewURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	return f.pool.SaveImage(community, sub.ID, resp.Body)
}

// storeIcon fetches the community icon exactly once per fetch, falling back to
// the bundled default icon. Icon problems never fail the fetch.
func (f *Fetcher) storeIcon(ctx context.Context, handle CommunityHandle) {
	if handle.IconURL != "" {
		err := f.downloadIcon(ctx, handle)
		if err == nil {
			return
		}
		log.Printf("Fetch r/%s: icon download failed, using default: %v", handle.Name, err)
	}

	if err := f.pool.SaveIcon(handle.Name, bytes.NewReader(f.defaultIcon)); err != nil {
		log.Printf("Fetch r/%s: failed to store default icon: %v", handle.Name, err)
	}
}

func (f *Fetcher) downloadIcon(ctx context.Context, handle CommunityHandle) error {
	dctx, cancel := context.WithTimeout(ctx, DownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(dctx, http.MethodGet, handle.IconURL, nil)
	if err != nil {
		return err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("icon download returned status %d", resp.StatusCode)
	}

	return f.pool.SaveIcon(handle.Name, resp.Body)
}
