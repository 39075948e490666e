package main

import (
	"context"
	"path/filepath"

	"github.com/cjelland/redwall/asset"
	"github.com/cjelland/redwall/config"
	"github.com/cjelland/redwall/pkg/background"
	redditprov "github.com/cjelland/redwall/pkg/background/providers/reddit"
	"github.com/cjelland/redwall/pkg/hotkey"
	"github.com/cjelland/redwall/ui"
	"github.com/cjelland/redwall/util"
	"github.com/cjelland/redwall/util/log"
)

func main() {
	acquired, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	if err := config.EnsureStorage(); err != nil {
		log.Fatalf("Failed to create data directories: %v", err)
	}

	settings := background.NewSettingsStore(config.SettingsFile())
	if _, err := settings.Load(); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	subs := background.NewSubredditStore(config.SubredditsFile())
	if err := subs.Load(); err != nil {
		log.Fatalf("Failed to load subreddit configuration: %v", err)
	}

	pool := background.NewPool(config.ImagesDir(), config.IconsDir())
	detector := background.NewScreenDetector()

	defaultIcon, err := asset.NewManager().GetRawIcon(config.DefaultIconName)
	if err != nil {
		log.Fatalf("Failed to load default subreddit icon: %v", err)
	}

	fetcher := background.NewFetcher(redditprov.NewSource, pool, settings, detector, defaultIcon)
	queue := background.NewTaskQueue(fetcher, subs, 4)

	setter := background.NewSetter()
	fittedPath := filepath.Join(config.DataDir(), background.BackgroundFileName)
	rotator := background.NewRotator(pool, settings, detector, background.NewFitProcessor(), setter, fittedPath)

	app := ui.NewApp(queue, subs, settings, pool, rotator)
	if app == nil {
		log.Fatal("This platform cannot host the application")
	}

	go func() {
		result, err := util.CheckForUpdates(context.Background())
		if err != nil {
			log.Printf("Update check failed: %v", err)
			return
		}
		if result.UpdateAvailable {
			log.Printf("Update available: %s (running %s) %s",
				result.LatestVersion, result.CurrentVersion, result.ReleaseURL)
		}
	}()

	hotkey.StartListeners(hotkey.Actions{
		Next: func() {
			if err := rotator.Next(); err != nil {
				log.Printf("Next background failed: %v", err)
			}
		},
		Skip: func() {
			if err := rotator.SkipAndBlacklist(); err != nil {
				log.Printf("Skip & blacklist failed: %v", err)
			}
		},
	})

	app.RefreshAll()
	rotator.Start()
	defer rotator.Stop()

	app.Run()
}
