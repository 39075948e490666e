package background

import "math"

// DerivedFilename encodes community ownership into the pooled filename so that
// later per-community deletion is unambiguous.
func DerivedFilename(community, id string) string {
	return community + "_" + id + ImageExt
}

// IsViable decides whether a submission is acceptable as a wallpaper candidate
// for the given display geometry. The checks short-circuit in order:
// platform-hosted media, not a video, no upscaling, aspect closeness, and
// finally the blacklist by exact derived filename.
func IsViable(sub Submission, community string, geo Geometry, blacklist map[string]bool) bool {
	if sub.Domain != HostedMediaDomain {
		return false
	}
	if sub.IsVideo {
		return false
	}
	if sub.PreviewWidth < geo.Width || sub.PreviewHeight < geo.Height {
		return false
	}
	if sub.PreviewHeight <= 0 {
		return false
	}
	imageAspect := float64(sub.PreviewWidth) / float64(sub.PreviewHeight)
	if math.Abs(imageAspect-geo.Aspect()) > AspectTolerance {
		return false
	}
	if blacklist[DerivedFilename(community, sub.ID)] {
		return false
	}
	return true
}
