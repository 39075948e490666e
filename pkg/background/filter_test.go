package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func viableSubmission() Submission {
	return Submission{
		ID:            "abc123",
		Domain:        HostedMediaDomain,
		IsVideo:       false,
		PreviewWidth:  3840,
		PreviewHeight: 2160,
		PreviewURL:    "https://i.redd.it/abc123.jpg",
	}
}

func TestIsViableAcceptsGoodSubmission(t *testing.T) {
	geo := Geometry{Width: 1920, Height: 1080}
	assert.True(t, IsViable(viableSubmission(), "EarthPorn", geo, nil))
}

func TestIsViableRejectsForeignDomain(t *testing.T) {
	geo := Geometry{Width: 1920, Height: 1080}
	sub := viableSubmission()
	sub.Domain = "imgur.com"
	assert.False(t, IsViable(sub, "EarthPorn", geo, nil))
}

func TestIsViableRejectsVideoEvenWithPerfectDimensions(t *testing.T) {
	geo := Geometry{Width: 1920, Height: 1080}
	sub := viableSubmission()
	sub.PreviewWidth = geo.Width
	sub.PreviewHeight = geo.Height
	sub.IsVideo = true
	assert.False(t, IsViable(sub, "EarthPorn", geo, nil))
}

func TestIsViableRejectsUpscaling(t *testing.T) {
	geo := Geometry{Width: 1920, Height: 1080}

	sub := viableSubmission()
	sub.PreviewWidth = 1919
	sub.PreviewHeight = 1080
	assert.False(t, IsViable(sub, "EarthPorn", geo, nil), "narrower than screen")

	sub = viableSubmission()
	sub.PreviewWidth = 1920
	sub.PreviewHeight = 1079
	assert.False(t, IsViable(sub, "EarthPorn", geo, nil), "shorter than screen")

	sub = viableSubmission()
	sub.PreviewWidth = 1920
	sub.PreviewHeight = 1080
	assert.True(t, IsViable(sub, "EarthPorn", geo, nil), "exact size is fine")
}

func TestIsViableAspectToleranceIsInclusive(t *testing.T) {
	geo := Geometry{Width: 100, Height: 100}

	sub := viableSubmission()
	sub.PreviewWidth = 120
	sub.PreviewHeight = 100
	assert.True(t, IsViable(sub, "EarthPorn", geo, nil), "difference of exactly 0.2 is acceptable")

	sub.PreviewWidth = 121
	assert.False(t, IsViable(sub, "EarthPorn", geo, nil), "difference of 0.21 is not")
}

func TestIsViableBlacklistMatchesExactDerivedFilename(t *testing.T) {
	geo := Geometry{Width: 1920, Height: 1080}
	sub := viableSubmission()

	blacklist := map[string]bool{DerivedFilename("EarthPorn", sub.ID): true}
	assert.False(t, IsViable(sub, "EarthPorn", geo, blacklist))

	// The same id under another community is a different file.
	assert.True(t, IsViable(sub, "CityPorn", geo, blacklist))

	// A different id under the same community is not blacklisted.
	other := viableSubmission()
	other.ID = "zzz999"
	assert.True(t, IsViable(other, "EarthPorn", geo, blacklist))
}

func TestDerivedFilename(t *testing.T) {
	assert.Equal(t, "EarthPorn_abc123.jpg", DerivedFilename("EarthPorn", "abc123"))
	assert.Equal(t, "Earth_Porn_abc123.jpg", DerivedFilename("Earth_Porn", "abc123"))
}
