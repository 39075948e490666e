// Package config provides the file system layout and shared constants for Redwall.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DataDir returns the per-user directory that holds all application state.
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, DataSubDir)
}

// ImagesDir returns the directory holding the wallpaper candidate pool.
func ImagesDir() string {
	return filepath.Join(DataDir(), ImagesDirName)
}

// IconsDir returns the directory holding the per-subreddit icons.
func IconsDir() string {
	return filepath.Join(DataDir(), IconsDirName)
}

// SettingsFile returns the path of the JSON settings file.
func SettingsFile() string {
	return filepath.Join(DataDir(), SettingsFileName)
}

// SubredditsFile returns the path of the JSON subreddit configuration file.
func SubredditsFile() string {
	return filepath.Join(DataDir(), SubredditsFileName)
}

// EnsureStorage creates the data directory tree if it does not already exist.
func EnsureStorage() error {
	for _, dir := range []string{DataDir(), ImagesDir(), IconsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
