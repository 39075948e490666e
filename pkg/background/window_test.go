package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowLabel(t *testing.T) {
	cases := map[string]TimeWindow{
		"Now":        WindowHour,
		"Today":      WindowDay,
		"This week":  WindowWeek,
		"This month": WindowMonth,
		"This year":  WindowYear,
		"All time":   WindowAll,
	}
	for label, want := range cases {
		got, err := ParseWindowLabel(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got)
	}
}

func TestParseWindowLabelRejectsUnknown(t *testing.T) {
	_, err := ParseWindowLabel("Yesterday")
	assert.Error(t, err)

	// Raw API values are not labels.
	_, err = ParseWindowLabel("week")
	assert.Error(t, err)
}

func TestWindowLabelsOrderMatchesUI(t *testing.T) {
	assert.Equal(t, []string{"Now", "Today", "This week", "This month", "This year", "All time"}, WindowLabels())
	assert.Contains(t, WindowLabels(), DefaultWindowLabel)
}
