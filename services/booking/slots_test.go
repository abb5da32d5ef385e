package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaysExcludesToday(t *testing.T) {
	today := time.Date(2025, 10, 20, 15, 30, 0, 0, time.UTC)

	days := GenerateDays(today, 7)
	require.Len(t, days, 7)

	assert.Equal(t, "2025-10-21", days[0].DateStr)
	assert.Equal(t, "2025-10-27", days[6].DateStr)
	for _, d := range days {
		assert.NotEqual(t, "2025-10-20", d.DateStr)
	}
}

func TestGenerateDaysStrictlyIncreasing(t *testing.T) {
	days := GenerateDays(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), 7)
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].Date.After(days[i-1].Date))
	}
}

func TestGenerateDaysCrossesMonthBoundary(t *testing.T) {
	days := GenerateDays(time.Date(2025, 10, 29, 0, 0, 0, 0, time.UTC), 7)
	require.Len(t, days, 7)

	assert.Equal(t, "2025-10-30", days[0].DateStr)
	assert.Equal(t, "2025-11-05", days[6].DateStr)
}

func TestGenerateDaysDeterministic(t *testing.T) {
	today := time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, GenerateDays(today, 7), GenerateDays(today, 7))
}

func TestGenerateDaysLabels(t *testing.T) {
	days := GenerateDays(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), 1)
	require.Len(t, days, 1)

	assert.Equal(t, "Tue", days[0].Weekday)
	assert.Equal(t, 21, days[0].DayOfMonth)
	assert.Equal(t, "Tue, 21 Oct 2025", days[0].Label)
}
