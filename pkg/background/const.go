package background

import "time"

const (
	// HostedMediaDomain is reddit's own image hosting domain. Submissions hosted
	// elsewhere have no reliable high resolution preview and are rejected.
	HostedMediaDomain = "i.redd.it"

	// AspectTolerance is the maximum allowed absolute difference between the
	// image aspect ratio and the screen aspect ratio.
	AspectTolerance = 0.2

	// FeedLookupLimit caps how many submissions a single fetch may examine,
	// regardless of how many images were requested.
	FeedLookupLimit = 1000

	// feedPageSize is the listing page size requested from the content API.
	feedPageSize = 100

	// DownloadTimeout bounds a single image or icon download. A submission
	// whose download exceeds it is skipped, not the whole fetch.
	DownloadTimeout = 10 * time.Second

	// ImageExt is the extension of pooled wallpaper candidates.
	ImageExt = ".jpg"

	// IconExt is the extension of the per-subreddit icons.
	IconExt = ".png"

	// BackgroundFileName is the fitted image handed to the OS wallpaper setter.
	BackgroundFileName = "background.jpg"
)
