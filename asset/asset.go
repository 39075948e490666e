// Package asset provides access to the application's embedded resources.
package asset

import (
	"embed"
	"fmt"

	"fyne.io/fyne/v2"
)

//go:embed icons/*
var assets embed.FS

// Manager manages the loading of embedded assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetIcon loads and returns an embedded icon asset by name.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("icon name is empty")
	}

	iconData, err := assets.ReadFile("icons/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to load icon %s: %w", name, err)
	}

	return fyne.NewStaticResource(name, iconData), nil
}

// GetRawIcon loads and returns the raw bytes of an embedded icon asset by name.
func (am *Manager) GetRawIcon(name string) ([]byte, error) {
	return assets.ReadFile("icons/" + name)
}
