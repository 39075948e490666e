//go:build darwin

package background

import (
	"fmt"
	"os/exec"
)

type platformSetter struct{}

// Set sets the desktop wallpaper through System Events.
func (s *platformSetter) Set(imagePath string) error {
	script := fmt.Sprintf(`tell application "System Events" to set picture of every desktop to %q`, imagePath)
	return exec.Command("osascript", "-e", script).Run()
}
