package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timeOfDay string
		expected  string
	}{
		{
			name:      "daylight saving time is UTC-7",
			date:      "2024-07-15",
			timeOfDay: "14:30:00",
			expected:  "2024-07-15T21:30:00Z",
		},
		{
			name:      "standard time is UTC-8",
			date:      "2024-01-15",
			timeOfDay: "14:30:00",
			expected:  "2024-01-15T22:30:00Z",
		},
		{
			name:      "missing time defaults to midnight local",
			date:      "2024-03-10",
			timeOfDay: "",
			expected:  "2024-03-10T08:00:00Z",
		},
		{
			name:      "slash date layout",
			date:      "07/15/2024",
			timeOfDay: "14:30:00",
			expected:  "2024-07-15T21:30:00Z",
		},
		{
			name:      "date cell carrying a time portion uses only the date",
			date:      "2024-07-15 09:00:00",
			timeOfDay: "14:30:00",
			expected:  "2024-07-15T21:30:00Z",
		},
		{
			name:      "excel serial date",
			date:      "45361", // 2024-03-10
			timeOfDay: "",
			expected:  "2024-03-10T08:00:00Z",
		},
		{
			name:      "excel day-fraction time",
			date:      "2024-01-15",
			timeOfDay: "0.604166666666667", // 14:30
			expected:  "2024-01-15T22:30:00Z",
		},
		{
			name:      "twelve hour clock",
			date:      "2024-01-15",
			timeOfDay: "2:30 PM",
			expected:  "2024-01-15T22:30:00Z",
		},
		{
			name:      "hour and minute only",
			date:      "2024-01-15",
			timeOfDay: "14:30",
			expected:  "2024-01-15T22:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineDateTime(tt.date, tt.timeOfDay)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCombineDateTime_Errors(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timeOfDay string
	}{
		{name: "empty date", date: "", timeOfDay: "14:30:00"},
		{name: "garbage date", date: "not-a-date", timeOfDay: ""},
		{name: "garbage time", date: "2024-01-15", timeOfDay: "half past two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CombineDateTime(tt.date, tt.timeOfDay)
			assert.Error(t, err)
		})
	}
}

func TestCombineDateTime_SpringForwardGap(t *testing.T) {
	// 2024-03-10 02:30 Pacific does not exist; the clock jumps from 02:00
	// PST to 03:00 PDT. time.Date normalizes forward per the tz database.
	got, err := CombineDateTime("2024-03-10", "02:30:00")
	require.NoError(t, err)
	assert.Contains(t, []string{"2024-03-10T09:30:00Z", "2024-03-10T10:30:00Z"}, got)
}
