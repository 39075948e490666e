//go:build darwin

package hotkey

import "golang.design/x/hotkey"

const (
	supported = true

	// Cmd+Option reads more natively than Ctrl+Alt on macOS.
	modCtrl = hotkey.ModCmd
	modAlt  = hotkey.ModOption

	keyRight = hotkey.KeyRight
	keyDown  = hotkey.KeyDown
)
