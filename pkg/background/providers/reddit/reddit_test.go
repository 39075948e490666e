package reddit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingDecodesToSubmissions(t *testing.T) {
	payload := `{
		"kind": "Listing",
		"data": {
			"after": "t3_zzz",
			"children": [
				{
					"kind": "t3",
					"data": {
						"id": "abc123",
						"domain": "i.redd.it",
						"is_video": false,
						"preview": {
							"images": [
								{"source": {"url": "https://i.redd.it/abc123.jpg?a=1&amp;b=2", "width": 3840, "height": 2160}}
							]
						}
					}
				},
				{
					"kind": "t3",
					"data": {
						"id": "def456",
						"domain": "v.redd.it",
						"is_video": true
					}
				}
			]
		}
	}`

	var listing listingResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &listing))
	assert.Equal(t, "t3_zzz", listing.Data.After)
	require.Len(t, listing.Data.Children, 2)

	img := listing.Data.Children[0].Data.toSubmission()
	assert.Equal(t, "abc123", img.ID)
	assert.Equal(t, "i.redd.it", img.Domain)
	assert.False(t, img.IsVideo)
	assert.Equal(t, "https://i.redd.it/abc123.jpg?a=1&b=2", img.PreviewURL)
	assert.Equal(t, 3840, img.PreviewWidth)
	assert.Equal(t, 2160, img.PreviewHeight)

	vid := listing.Data.Children[1].Data.toSubmission()
	assert.True(t, vid.IsVideo)
	assert.Empty(t, vid.PreviewURL)
	assert.Zero(t, vid.PreviewWidth)
	assert.Zero(t, vid.PreviewHeight)
}

func TestAboutIconPrefersCommunityIcon(t *testing.T) {
	payload := `{
		"kind": "t5",
		"data": {
			"display_name": "EarthPorn",
			"community_icon": "https://styles.redditmedia.com/icon.png?width=256&amp;s=x",
			"icon_img": "https://b.thumbs.redditmedia.com/legacy.png"
		}
	}`

	var about aboutResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &about))
	assert.Equal(t, subredditKind, about.Kind)
	assert.Equal(t, "EarthPorn", about.Data.DisplayName)
	assert.Equal(t, "https://styles.redditmedia.com/icon.png?width=256&s=x", about.iconURL())
}

func TestAboutIconFallsBackToLegacy(t *testing.T) {
	var about aboutResponse
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"t5","data":{"display_name":"pics","icon_img":"https://a/legacy.png"}}`), &about))
	assert.Equal(t, "https://a/legacy.png", about.iconURL())
}
