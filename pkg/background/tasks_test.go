package background

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routingSource dispatches to a per-community fakeSource by name.
type routingSource struct {
	sources map[string]*fakeSource
}

func (s *routingSource) Resolve(ctx context.Context, name string) (CommunityHandle, error) {
	src, ok := s.sources[name]
	if !ok {
		return CommunityHandle{}, ErrSubredditNotFound
	}
	return src.Resolve(ctx, name)
}

func (s *routingSource) TopPage(ctx context.Context, name string, window TimeWindow, after string, limit int) ([]Submission, string, error) {
	src, ok := s.sources[name]
	if !ok {
		return nil, "", ErrSubredditNotFound
	}
	return src.TopPage(ctx, name, window, after, limit)
}

type taskEnv struct {
	queue *TaskQueue
	env   *fetchEnv
	subs  *SubredditStore
}

func newTaskEnv(t *testing.T, source ContentSource) *taskEnv {
	t.Helper()
	env := newFetchEnv(t, source)
	subs := NewSubredditStore(filepath.Join(t.TempDir(), "subreddits.json"))
	require.NoError(t, subs.Load())
	return &taskEnv{
		queue: NewTaskQueue(env.fetcher, subs, 4),
		env:   env,
		subs:  subs,
	}
}

func TestTaskQueueRunsTasksForDifferentCommunities(t *testing.T) {
	earth := &fakeSource{handle: CommunityHandle{Name: "EarthPorn"}}
	city := &fakeSource{handle: CommunityHandle{Name: "CityPorn"}}
	source := &routingSource{sources: map[string]*fakeSource{
		"EarthPorn": earth,
		"CityPorn":  city,
	}}
	te := newTaskEnv(t, source)
	earth.subs = []Submission{te.env.viable("one")}
	city.subs = []Submission{te.env.viable("two"), te.env.viable("three")}

	te.queue.Enqueue(SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 1})
	te.queue.Enqueue(SubredditConfig{Name: "CityPorn", WindowLabel: "Today", Limit: 2})
	te.queue.Wait()

	assert.Zero(t, te.queue.InFlight())
	names, err := te.env.pool.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"EarthPorn_one.jpg", "CityPorn_two.jpg", "CityPorn_three.jpg"}, names)
}

func TestTaskQueueRejectsInvalidConfig(t *testing.T) {
	te := newTaskEnv(t, &fakeSource{handle: CommunityHandle{Name: "EarthPorn"}})

	te.queue.Enqueue(SubredditConfig{Name: "bad name", WindowLabel: "This week", Limit: 1})
	te.queue.Wait()

	assert.Zero(t, te.queue.InFlight())
	names, _ := te.env.pool.List()
	assert.Empty(t, names)
}

func TestTaskQueueBusyListenerBracketsWork(t *testing.T) {
	source := &fakeSource{handle: CommunityHandle{Name: "EarthPorn"}}
	te := newTaskEnv(t, source)
	source.subs = []Submission{te.env.viable("one")}

	var mu sync.Mutex
	var events []bool
	te.queue.SetBusyListener(func(busy bool) {
		mu.Lock()
		events = append(events, busy)
		mu.Unlock()
	})

	te.queue.Enqueue(SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 1})
	te.queue.Enqueue(SubredditConfig{Name: "EarthPorn", WindowLabel: "Today", Limit: 1})
	te.queue.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, events)
	assert.True(t, events[0], "first event marks the queue busy")
	assert.False(t, events[len(events)-1], "last event marks the queue idle")
}

func TestTaskQueueRemovesUnknownSubreddit(t *testing.T) {
	te := newTaskEnv(t, &fakeSource{resolveErr: ErrSubredditNotFound})

	cfg := SubredditConfig{Name: "NoSuchPlace", WindowLabel: "This week", Limit: 1}
	require.NoError(t, te.subs.Add(cfg))

	te.queue.Enqueue(cfg)
	te.queue.Wait()

	_, found := te.subs.Get("NoSuchPlace")
	assert.False(t, found, "dead configuration should have been removed")
}

func TestTaskQueueEnqueueReplacingDropsSurplus(t *testing.T) {
	source := &fakeSource{handle: CommunityHandle{Name: "EarthPorn"}}
	te := newTaskEnv(t, source)
	source.subs = []Submission{te.env.viable("fresh")}

	for _, id := range []string{"old1", "old2", "old3"} {
		_, err := te.env.pool.SaveImage("EarthPorn", id, strings.NewReader("x"))
		require.NoError(t, err)
	}

	te.queue.EnqueueReplacing(SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 1})
	te.queue.Wait()

	names, err := te.env.pool.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"EarthPorn_fresh.jpg"}, names)
}

func TestTaskQueueSameCommunityTasksDoNotCorruptPool(t *testing.T) {
	source := &fakeSource{handle: CommunityHandle{Name: "EarthPorn"}}
	te := newTaskEnv(t, source)
	source.subs = []Submission{te.env.viable("one"), te.env.viable("two"), te.env.viable("three")}

	cfg := SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 3}
	for i := 0; i < 5; i++ {
		te.queue.Enqueue(cfg)
	}
	te.queue.Wait()

	names, err := te.env.pool.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"EarthPorn_one.jpg", "EarthPorn_two.jpg", "EarthPorn_three.jpg"}, names)
}
