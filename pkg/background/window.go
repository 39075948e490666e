package background

import "fmt"

// TimeWindow is the time range over which the "top" ranking is computed,
// in the content API's own vocabulary.
type TimeWindow string

// Supported popularity windows.
const (
	WindowHour  TimeWindow = "hour"
	WindowDay   TimeWindow = "day"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
	WindowYear  TimeWindow = "year"
	WindowAll   TimeWindow = "all"
)

// windowLabels is the fixed 1:1 mapping between the human readable labels shown
// in the UI (and stored in subreddits.json) and the API window parameter.
var windowLabels = []struct {
	label  string
	window TimeWindow
}{
	{"Now", WindowHour},
	{"Today", WindowDay},
	{"This week", WindowWeek},
	{"This month", WindowMonth},
	{"This year", WindowYear},
	{"All time", WindowAll},
}

// DefaultWindowLabel is the window preselected for new subreddit entries.
const DefaultWindowLabel = "This week"

// ParseWindowLabel maps a human readable window label to its TimeWindow.
func ParseWindowLabel(label string) (TimeWindow, error) {
	for _, wl := range windowLabels {
		if wl.label == label {
			return wl.window, nil
		}
	}
	return "", fmt.Errorf("unknown time window label: %q", label)
}

// WindowLabels returns the window labels in display order.
func WindowLabels() []string {
	labels := make([]string, len(windowLabels))
	for i, wl := range windowLabels {
		labels[i] = wl.label
	}
	return labels
}
