package background

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"github.com/cjelland/redwall/util"
	"github.com/cjelland/redwall/util/log"
)

// Rotator periodically promotes a random pooled candidate to the desktop
// background. Settings are re-read every cycle so interval changes take
// effect without a restart.
type Rotator struct {
	pool       *Pool
	settings   *SettingsStore
	detector   GeometryDetector
	processor  *FitProcessor
	setter     Setter
	fittedPath string

	mu      sync.Mutex
	current string

	started  *util.SafeFlag
	kick     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRotator creates a rotator. fittedPath is where the display-fitted copy of
// the current wallpaper is written before being handed to the setter.
func NewRotator(pool *Pool, settings *SettingsStore, detector GeometryDetector, processor *FitProcessor, setter Setter, fittedPath string) *Rotator {
	return &Rotator{
		pool:       pool,
		settings:   settings,
		detector:   detector,
		processor:  processor,
		setter:     setter,
		fittedPath: fittedPath,
		started:    util.NewSafeFlag(),
		kick:       make(chan struct{}, 1),
		stop:       make(chan struct{}),
	}
}

// Start launches the rotation loop and sets an initial background, mirroring
// launch-on-startup behavior.
func (r *Rotator) Start() {
	if !r.started.CompareAndSwap(false, true) {
		return
	}
	if err := r.Next(); err != nil {
		log.Printf("Rotator: initial background not set: %v", err)
	}
	go r.loop()
}

// Stop terminates the rotation loop.
func (r *Rotator) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Rotator) loop() {
	for {
		interval := defaultChangeFrequency * time.Minute
		if settings, err := r.settings.Load(); err == nil {
			interval = settings.Frequency()
		} else {
			log.Printf("Rotator: failed to load settings, keeping default interval: %v", err)
		}

		select {
		case <-time.After(interval):
			if err := r.Next(); err != nil {
				log.Printf("Rotator: %v", err)
			}
		case <-r.kick:
			// Manual change happened; restart the interval from now.
		case <-r.stop:
			return
		}
	}
}

// Next picks a random pooled image, fits it to the current display and sets it
// as the wallpaper. The timer restarts so a manual change gets a full interval.
func (r *Rotator) Next() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.pool.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no images in the pool")
	}

	name := names[rand.Intn(len(names))]
	if name == r.current && len(names) > 1 {
		// Don't repeat the current image when an alternative exists.
		name = names[(indexOf(names, name)+1+rand.Intn(len(names)-1))%len(names)]
	}

	geo, err := r.detector.Detect()
	if err != nil {
		return err
	}

	srcPath := filepath.Join(r.pool.ImagesDir(), name)
	targetPath := r.fittedPath
	if err := r.processor.FitFile(srcPath, geo, r.fittedPath); err != nil {
		// Geometry may have changed since the fetch accepted this file; let
		// the OS scale the raw image rather than showing nothing.
		log.Printf("Rotator: fit failed for %s, using raw file: %v", name, err)
		targetPath = srcPath
	}

	if err := r.setter.Set(targetPath); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}

	r.current = name
	r.resetTimer()
	log.Debugf("Rotator: background set to %s", name)
	return nil
}

// Current returns the pooled filename of the active wallpaper.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SkipAndBlacklist records the current wallpaper in the persisted blacklist,
// removes it from the pool and advances to another image. Blacklist writes are
// the rotation side's responsibility; fetch tasks only ever read it.
func (r *Rotator) SkipAndBlacklist() error {
	r.mu.Lock()
	current := r.current
	r.mu.Unlock()

	if current != "" {
		if err := r.settings.Blacklist(current); err != nil {
			return err
		}
		if err := r.pool.Delete(current); err != nil {
			log.Printf("Rotator: failed to delete blacklisted %s: %v", current, err)
		}
	}
	return r.Next()
}

func (r *Rotator) resetTimer() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}
