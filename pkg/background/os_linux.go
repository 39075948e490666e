//go:build linux

package background

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

type platformSetter struct {
	mu      sync.Mutex
	swayCmd *exec.Cmd
}

// Set sets the desktop wallpaper, dispatching on the desktop environment.
func (s *platformSetter) Set(imagePath string) error {
	desktopEnv := os.Getenv("XDG_CURRENT_DESKTOP")
	if desktopEnv == "" {
		desktopEnv = os.Getenv("DESKTOP_SESSION")
	}
	desktopEnv = strings.ToLower(desktopEnv)

	switch {
	case strings.Contains(desktopEnv, "gnome"),
		strings.Contains(desktopEnv, "unity"),
		strings.Contains(desktopEnv, "cinnamon"),
		strings.Contains(desktopEnv, "mutter"):
		return s.setGNOME(imagePath)
	case strings.Contains(desktopEnv, "xfce"):
		return s.setXFCE(imagePath)
	case strings.Contains(desktopEnv, "sway"):
		return s.setSway(imagePath)
	default:
		return fmt.Errorf("unsupported desktop environment: %s", desktopEnv)
	}
}

func (s *platformSetter) setGNOME(imagePath string) error {
	uri := fmt.Sprintf("file://%s", imagePath)
	if err := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri).Run(); err != nil {
		return err
	}
	// Dark-mode GNOME reads a separate key.
	return exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri).Run()
}

func (s *platformSetter) setXFCE(imagePath string) error {
	return exec.Command("xfconf-query",
		"--channel", "xfce4-desktop",
		"--property", "/backdrop/screen0/monitor0/workspace0/last-image",
		"--set", imagePath).Run()
}

func (s *platformSetter) setSway(imagePath string) error {
	// swaybg is a daemon that keeps the wallpaper up for as long as it runs,
	// so it must be started, not waited on.
	cmd := exec.Command("swaybg", "-i", imagePath, "-m", "fill")
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()

	s.mu.Lock()
	prev := s.swayCmd
	s.swayCmd = cmd
	s.mu.Unlock()

	// Kill the previous instance only after the new one is up, otherwise the
	// desktop flashes back to the compositor default.
	if prev != nil && prev.Process != nil {
		prev.Process.Kill()
	}
	return nil
}
