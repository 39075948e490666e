// Package hotkey registers the global keyboard shortcuts.
package hotkey

import (
	"time"

	"github.com/cjelland/redwall/util/log"
	"golang.design/x/hotkey"
)

// Actions holds the callbacks the shortcuts drive.
type Actions struct {
	Next func()
	Skip func()
}

// StartListeners registers the global shortcuts and starts listening.
// Ctrl+Alt+Right advances to the next background, Ctrl+Alt+Down blacklists
// the current one and advances. Registration failures are logged and the
// shortcut is simply unavailable.
func StartListeners(actions Actions) {
	if !supported {
		log.Println("Global hotkeys are not supported on this platform")
		return
	}

	hkNext := hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, keyRight)
	hkSkip := hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, keyDown)

	registerAndListen(hkNext, "Next Background", actions.Next)
	registerAndListen(hkSkip, "Skip & Blacklist", actions.Skip)
}

func registerAndListen(hk *hotkey.Hotkey, name string, action func()) {
	if action == nil {
		return
	}
	if err := hk.Register(); err != nil {
		log.Printf("Failed to register hotkey %s: %v", name, err)
		return
	}
	log.Printf("Registered hotkey: %s", name)

	go func() {
		for range hk.Keydown() {
			log.Debugf("Hotkey pressed: %s", name)
			action()
			// Debounce repeats from a held key.
			time.Sleep(200 * time.Millisecond)
		}
	}()
}
