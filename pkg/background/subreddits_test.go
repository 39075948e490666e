package background

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubredditStore(t *testing.T) *SubredditStore {
	t.Helper()
	st := NewSubredditStore(filepath.Join(t.TempDir(), "subreddits.json"))
	require.NoError(t, st.Load())
	return st
}

func TestSubredditConfigJSONIsTriple(t *testing.T) {
	cfg := SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 25}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `["EarthPorn", "This week", 25]`, string(data))

	var decoded SubredditConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestSubredditConfigRejectsMalformedTriple(t *testing.T) {
	var cfg SubredditConfig
	assert.Error(t, json.Unmarshal([]byte(`["EarthPorn", "This week"]`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`{"name": "EarthPorn"}`), &cfg))
}

func TestSubredditConfigValidate(t *testing.T) {
	good := SubredditConfig{Name: "Earth_Porn", WindowLabel: "Today", Limit: 1}
	assert.NoError(t, good.Validate())

	for _, bad := range []SubredditConfig{
		{Name: "", WindowLabel: "Today", Limit: 1},
		{Name: "a", WindowLabel: "Today", Limit: 1},
		{Name: "bad name", WindowLabel: "Today", Limit: 1},
		{Name: "../etc", WindowLabel: "Today", Limit: 1},
		{Name: "EarthPorn", WindowLabel: "Yesterday", Limit: 1},
		{Name: "EarthPorn", WindowLabel: "Today", Limit: 0},
		{Name: "EarthPorn", WindowLabel: "Today", Limit: -3},
	} {
		err := bad.Validate()
		require.Error(t, err, "%+v", bad)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	}
}

func TestSubredditStoreAddOverwritesSameNameCaseInsensitively(t *testing.T) {
	st := newTestSubredditStore(t)

	require.NoError(t, st.Add(SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 25}))
	require.NoError(t, st.Add(SubredditConfig{Name: "CityPorn", WindowLabel: "Today", Limit: 10}))
	require.NoError(t, st.Add(SubredditConfig{Name: "earthporn", WindowLabel: "All time", Limit: 5}))

	entries := st.List()
	require.Len(t, entries, 2)
	assert.Equal(t, SubredditConfig{Name: "earthporn", WindowLabel: "All time", Limit: 5}, entries[0])
	assert.Equal(t, "CityPorn", entries[1].Name)
}

func TestSubredditStoreRemove(t *testing.T) {
	st := newTestSubredditStore(t)
	require.NoError(t, st.Add(SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 25}))

	require.NoError(t, st.Remove("EARTHPORN"))
	assert.Empty(t, st.List())

	// Removing an absent name is not an error.
	require.NoError(t, st.Remove("EarthPorn"))
}

func TestSubredditStorePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subreddits.json")

	st := NewSubredditStore(path)
	require.NoError(t, st.Load())
	require.NoError(t, st.Add(SubredditConfig{Name: "EarthPorn", WindowLabel: "This week", Limit: 25}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[["EarthPorn", "This week", 25]]`, string(data))

	st2 := NewSubredditStore(path)
	require.NoError(t, st2.Load())
	assert.Equal(t, st.List(), st2.List())
}

func TestSubredditStoreLoadCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subreddits.json")
	st := NewSubredditStore(path)
	require.NoError(t, st.Load())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
