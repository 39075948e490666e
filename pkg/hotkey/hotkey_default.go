//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

// golang.design/x/hotkey needs the X mainthread loop on Linux, which conflicts
// with fyne owning the main thread. Shortcuts stay tray-only there.
const (
	supported = false

	modCtrl = hotkey.Modifier(0)
	modAlt  = hotkey.Modifier(0)

	keyRight = hotkey.Key(0)
	keyDown  = hotkey.Key(0)
)
