package background

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// ErrInvalidConfig rejects malformed configurations at the store boundary so
// they never reach the fetch pipeline.
var ErrInvalidConfig = errors.New("invalid subreddit configuration")

// SubredditNamePattern matches the names reddit itself allows. It also keeps
// path separators and dot segments out of pooled filenames.
const SubredditNamePattern = `^[A-Za-z0-9][A-Za-z0-9_]{1,20}$`

var subredditNameRe = regexp.MustCompile(SubredditNamePattern)

// SubredditConfig is one (community, popularity window, count) entry driving
// the fetch pipeline. Identity is the name, case-insensitively.
type SubredditConfig struct {
	Name        string
	WindowLabel string
	Limit       int
}

// Validate reports whether the configuration may be enqueued.
func (c SubredditConfig) Validate() error {
	if !subredditNameRe.MatchString(c.Name) {
		return fmt.Errorf("%w: bad name %q", ErrInvalidConfig, c.Name)
	}
	if _, err := ParseWindowLabel(c.WindowLabel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	return nil
}

// MarshalJSON encodes the entry as the historical [name, label, count] triple.
func (c SubredditConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{c.Name, c.WindowLabel, c.Limit})
}

// UnmarshalJSON decodes the historical [name, label, count] triple.
func (c *SubredditConfig) UnmarshalJSON(data []byte) error {
	var triple []json.RawMessage
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("subreddit entry must have 3 elements, got %d", len(triple))
	}
	if err := json.Unmarshal(triple[0], &c.Name); err != nil {
		return err
	}
	if err := json.Unmarshal(triple[1], &c.WindowLabel); err != nil {
		return err
	}
	return json.Unmarshal(triple[2], &c.Limit)
}

// SubredditStore is the ordered, persisted list of subreddit configurations.
type SubredditStore struct {
	path    string
	mu      sync.Mutex
	entries []SubredditConfig
}

// NewSubredditStore creates a store backed by the given file path.
func NewSubredditStore(path string) *SubredditStore {
	return &SubredditStore{path: path}
}

// Load reads the configuration list from disk, creating an empty file when it
// does not exist yet.
func (st *SubredditStore) Load() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		st.entries = nil
		return st.saveLocked()
	}
	if err != nil {
		return fmt.Errorf("failed to read subreddits file: %w", err)
	}

	var entries []SubredditConfig
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse subreddits file: %w", err)
	}
	st.entries = entries
	return nil
}

func (st *SubredditStore) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("failed to create subreddits directory: %w", err)
	}
	entries := st.entries
	if entries == nil {
		entries = []SubredditConfig{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode subreddits: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write subreddits file: %w", err)
	}
	return nil
}

// List returns a copy of the entries in order.
func (st *SubredditStore) List() []SubredditConfig {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]SubredditConfig(nil), st.entries...)
}

// Get returns the entry with the given name, case-insensitively.
func (st *SubredditStore) Get(name string) (SubredditConfig, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, e := range st.entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return SubredditConfig{}, false
}

// Add validates and persists a configuration. A config whose name already
// exists overwrites that logical slot instead of duplicating it.
func (st *SubredditStore) Add(cfg SubredditConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	for i, e := range st.entries {
		if strings.EqualFold(e.Name, cfg.Name) {
			st.entries[i] = cfg
			return st.saveLocked()
		}
	}
	st.entries = append(st.entries, cfg)
	return st.saveLocked()
}

// Remove deletes the entry with the given name, case-insensitively. Removing a
// name that is not present is not an error.
func (st *SubredditStore) Remove(name string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	kept := st.entries[:0]
	for _, e := range st.entries {
		if !strings.EqualFold(e.Name, name) {
			kept = append(kept, e)
		}
	}
	st.entries = kept
	return st.saveLocked()
}
