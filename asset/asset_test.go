package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIcon(t *testing.T) {
	am := NewManager()

	res, err := am.GetIcon("tray.png")
	require.NoError(t, err)
	assert.Equal(t, "tray.png", res.Name())
	assert.NotEmpty(t, res.Content())
}

func TestGetIconMissing(t *testing.T) {
	am := NewManager()

	_, err := am.GetIcon("does_not_exist.png")
	assert.Error(t, err)

	_, err = am.GetIcon("")
	assert.Error(t, err)
}

func TestGetRawIcon(t *testing.T) {
	am := NewManager()

	data, err := am.GetRawIcon("subreddit_default.png")
	require.NoError(t, err)
	// PNG magic header
	require.True(t, len(data) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
