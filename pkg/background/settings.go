package background

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// defaultChangeFrequency is the rotation interval in minutes used when the
// settings file is created from scratch.
const defaultChangeFrequency = 30

// Settings is the persisted application settings snapshot. The blacklist holds
// derived filenames the user rejected by manual skip; it only ever grows unless
// pruned externally.
type Settings struct {
	ClientID        string   `json:"client_id"`
	ClientSecret    string   `json:"client_secret"`
	UserAgent       string   `json:"user_agent"`
	ChangeFrequency int      `json:"change_frequency"` // minutes
	Blacklist       []string `json:"blacklist"`
}

// BlacklistSet returns the blacklist as a membership set.
func (s Settings) BlacklistSet() map[string]bool {
	set := make(map[string]bool, len(s.Blacklist))
	for _, name := range s.Blacklist {
		set[name] = true
	}
	return set
}

// Frequency returns the rotation interval as a duration, never below one minute.
func (s Settings) Frequency() time.Duration {
	minutes := s.ChangeFrequency
	if minutes < 1 {
		minutes = defaultChangeFrequency
	}
	return time.Duration(minutes) * time.Minute
}

// SettingsStore loads and saves the JSON settings file. Fetch tasks re-read it
// at start time so a concurrently grown blacklist is always honored; writes go
// through the store's mutex.
type SettingsStore struct {
	path string
	mu   sync.Mutex
}

// NewSettingsStore creates a store backed by the given file path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load reads the current settings from disk, creating the file with defaults
// when it does not exist yet.
func (ss *SettingsStore) Load() (Settings, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.loadLocked()
}

func (ss *SettingsStore) loadLocked() (Settings, error) {
	data, err := os.ReadFile(ss.path)
	if os.IsNotExist(err) {
		defaults := Settings{ChangeFrequency: defaultChangeFrequency, Blacklist: []string{}}
		if err := ss.saveLocked(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return s, nil
}

// Save writes the given settings to disk.
func (ss *SettingsStore) Save(s Settings) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.saveLocked(s)
}

func (ss *SettingsStore) saveLocked(s Settings) error {
	if err := os.MkdirAll(filepath.Dir(ss.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(ss.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Blacklist appends a filename to the persisted blacklist. Duplicates are kept
// out so repeated skips of the same image stay idempotent.
func (ss *SettingsStore) Blacklist(filename string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	s, err := ss.loadLocked()
	if err != nil {
		return err
	}
	for _, existing := range s.Blacklist {
		if existing == filename {
			return nil
		}
	}
	s.Blacklist = append(s.Blacklist, filename)
	return ss.saveLocked(s)
}
