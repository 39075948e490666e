// Package ui builds the tray menu and management windows.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/cjelland/redwall/asset"
	"github.com/cjelland/redwall/config"
	"github.com/cjelland/redwall/pkg/background"
	"github.com/cjelland/redwall/util/log"
)

// App represents the application.
type App struct {
	app      fyne.App
	assetMgr *asset.Manager
	trayMenu *fyne.Menu

	queue    *background.TaskQueue
	subs     *background.SubredditStore
	settings *background.SettingsStore
	pool     *background.Pool
	rotator  *background.Rotator
}

// NewApp wires the application UI. Returns nil when the platform cannot host
// a tray icon.
func NewApp(queue *background.TaskQueue, subs *background.SubredditStore, settings *background.SettingsStore, pool *background.Pool, rotator *background.Rotator) *App {
	a := app.NewWithID(config.AppID)
	if _, ok := a.(desktop.App); !ok {
		log.Println("Tray icon not supported on this platform")
		return nil
	}

	ra := &App{
		app:      a,
		assetMgr: asset.NewManager(),
		queue:    queue,
		subs:     subs,
		settings: settings,
		pool:     pool,
		rotator:  rotator,
	}
	ra.createTrayMenu()
	return ra
}

func (ra *App) createTrayMenu() {
	desk := ra.app.(desktop.App)
	trayIcon, err := ra.assetMgr.GetIcon(config.TrayIconName)
	if err != nil {
		log.Fatalf("Failed to load tray icon: %v", err)
	}

	trayMenu := fyne.NewMenu(
		config.AppName,
		fyne.NewMenuItem("Next Background", func() {
			go ra.nextBackground()
		}),
		fyne.NewMenuItem("Skip & Blacklist", func() {
			go ra.skipAndBlacklist()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Manage Subreddits", func() {
			ra.showManageWindow()
		}),
		fyne.NewMenuItem("Settings", func() {
			ra.showSettingsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			ra.app.Quit()
		}),
	)
	desk.SetSystemTrayMenu(trayMenu)
	desk.SetSystemTrayIcon(trayIcon)
	ra.app.SetIcon(trayIcon)
	ra.trayMenu = trayMenu
}

func (ra *App) nextBackground() {
	if err := ra.rotator.Next(); err != nil {
		log.Printf("Next background failed: %v", err)
	}
}

func (ra *App) skipAndBlacklist() {
	if err := ra.rotator.SkipAndBlacklist(); err != nil {
		log.Printf("Skip & blacklist failed: %v", err)
	}
}

// RefreshAll enqueues a fetch task for every configured subreddit.
func (ra *App) RefreshAll() {
	for _, cfg := range ra.subs.List() {
		ra.queue.Enqueue(cfg)
	}
}

// Run runs the application event loop. Blocks until quit.
func (ra *App) Run() {
	ra.app.Run()
}
