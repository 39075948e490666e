package background

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/cjelland/redwall/util"
	"github.com/cjelland/redwall/util/log"
	"golang.org/x/sync/semaphore"
)

// TaskQueue runs fetch tasks off the UI thread with bounded concurrency.
// Tasks for different communities interleave freely; tasks for the same
// community are serialized through a per-key mutex since the fetcher itself
// has no internal locking and same-name tasks would race on the same files.
type TaskQueue struct {
	fetcher  *Fetcher
	subs     *SubredditStore
	sem      *semaphore.Weighted
	inFlight *util.SafeCounter
	keyLocks sync.Map // lowercased community name -> *sync.Mutex
	wg       sync.WaitGroup

	listenerMu sync.Mutex
	onBusy     func(busy bool)
}

// NewTaskQueue creates a queue running at most maxConcurrent fetches at once.
func NewTaskQueue(fetcher *Fetcher, subs *SubredditStore, maxConcurrent int64) *TaskQueue {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &TaskQueue{
		fetcher:  fetcher,
		subs:     subs,
		sem:      semaphore.NewWeighted(maxConcurrent),
		inFlight: util.NewSafeCounter(),
	}
}

// SetBusyListener registers a callback fired with true when the in-flight
// count leaves zero and with false when it returns to zero. The UI uses it to
// disable destructive buttons while any fetch is running.
func (q *TaskQueue) SetBusyListener(fn func(busy bool)) {
	q.listenerMu.Lock()
	defer q.listenerMu.Unlock()
	q.onBusy = fn
}

func (q *TaskQueue) notifyBusy(busy bool) {
	q.listenerMu.Lock()
	fn := q.onBusy
	q.listenerMu.Unlock()
	if fn != nil {
		fn(busy)
	}
}

// InFlight returns the number of tasks currently started but not finished.
func (q *TaskQueue) InFlight() int {
	return q.inFlight.Value()
}

// Enqueue starts exactly one fetch task for the given configuration. Invalid
// configurations are rejected here and never reach the pipeline.
func (q *TaskQueue) Enqueue(cfg SubredditConfig) {
	q.enqueue(cfg, false)
}

// EnqueueReplacing starts a fetch that first clears the community's pooled
// files, for configurations overwriting an existing entry.
func (q *TaskQueue) EnqueueReplacing(cfg SubredditConfig) {
	q.enqueue(cfg, true)
}

func (q *TaskQueue) enqueue(cfg SubredditConfig, replace bool) {
	if err := cfg.Validate(); err != nil {
		log.Printf("TaskQueue: rejecting %q: %v", cfg.Name, err)
		return
	}

	if q.inFlight.Increment() == 1 {
		q.notifyBusy(true)
	}
	q.wg.Add(1)
	go q.run(cfg, replace)
}

func (q *TaskQueue) run(cfg SubredditConfig, replace bool) {
	defer q.wg.Done()
	defer func() {
		// Decrement on every outcome so the UI can never stay locked.
		if q.inFlight.Decrement() == 0 {
			q.notifyBusy(false)
		}
	}()

	ctx := context.Background()
	if err := q.sem.Acquire(ctx, 1); err != nil {
		log.Printf("TaskQueue: failed to acquire worker slot: %v", err)
		return
	}
	defer q.sem.Release(1)

	mu := q.lockFor(cfg.Name)
	mu.Lock()
	defer mu.Unlock()

	fetch := q.fetcher.Fetch
	if replace {
		fetch = q.fetcher.Refetch
	}

	written, err := fetch(ctx, cfg)
	if errors.Is(err, ErrSubredditNotFound) {
		log.Printf("TaskQueue: r/%s does not exist, removing its configuration", cfg.Name)
		if rerr := q.subs.Remove(cfg.Name); rerr != nil {
			log.Printf("TaskQueue: failed to remove dead configuration %q: %v", cfg.Name, rerr)
		}
		return
	}
	if err != nil {
		log.Printf("TaskQueue: fetch for r/%s failed: %v", cfg.Name, err)
		return
	}
	log.Debugf("TaskQueue: fetch for r/%s wrote %d images", cfg.Name, len(written))
}

func (q *TaskQueue) lockFor(name string) *sync.Mutex {
	actual, _ := q.keyLocks.LoadOrStore(strings.ToLower(name), &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// Wait blocks until every enqueued task has finished.
func (q *TaskQueue) Wait() {
	q.wg.Wait()
}
