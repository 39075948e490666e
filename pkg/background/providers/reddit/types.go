package reddit

import (
	"html"

	"github.com/cjelland/redwall/pkg/background"
)

// subredditKind is the thing kind of a subreddit in the reddit API.
const subredditKind = "t5"

// aboutResponse is the r/<name>/about payload, reduced to what we consume.
type aboutResponse struct {
	Kind string `json:"kind"`
	Data struct {
		DisplayName   string `json:"display_name"`
		CommunityIcon string `json:"community_icon"`
		IconImg       string `json:"icon_img"`
	} `json:"data"`
}

// iconURL prefers the modern community icon over the legacy one. Either may be
// empty; callers fall back to the bundled default icon.
func (a aboutResponse) iconURL() string {
	if a.Data.CommunityIcon != "" {
		return html.UnescapeString(a.Data.CommunityIcon)
	}
	return html.UnescapeString(a.Data.IconImg)
}

// listingResponse is a reddit listing page of submissions.
type listingResponse struct {
	Kind string `json:"kind"`
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// postData is one submission, reduced to the media metadata the viability
// filter consumes.
type postData struct {
	ID      string `json:"id"`
	Domain  string `json:"domain"`
	IsVideo bool   `json:"is_video"`
	Preview struct {
		Images []struct {
			Source previewSource `json:"source"`
		} `json:"images"`
	} `json:"preview"`
}

type previewSource struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (p postData) toSubmission() background.Submission {
	sub := background.Submission{
		ID:      p.ID,
		Domain:  p.Domain,
		IsVideo: p.IsVideo,
	}
	// Submissions without preview data keep zero dimensions and are rejected
	// by the no-upscaling check.
	if len(p.Preview.Images) > 0 {
		source := p.Preview.Images[0].Source
		sub.PreviewURL = html.UnescapeString(source.URL)
		sub.PreviewWidth = source.Width
		sub.PreviewHeight = source.Height
	}
	return sub
}
