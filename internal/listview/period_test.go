package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowFor(t *testing.T) {
	now := time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		period Period
		start  string
		end    string
	}{
		{PeriodCurrentMonth, "2025-03-01", "2025-04-01"},
		{PeriodPreviousMonth, "2025-02-01", "2025-03-01"},
		{PeriodLast30Days, "2025-03-02", "2025-04-01"},
		{PeriodLast3Months, "2024-12-31", "2025-04-01"},
		{PeriodCurrentYear, "2025-01-01", "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			w, ok := WindowFor(tt.period, now)
			require.True(t, ok)
			assert.Equal(t, day(tt.start), w.Start)
			assert.Equal(t, day(tt.end), w.End)
		})
	}
}

func TestWindowFor_MonthEnd(t *testing.T) {
	tests := []struct {
		name   string
		now    string
		period Period
		start  string
	}{
		{name: "31st back to february", now: "2025-05-31", period: PeriodLast3Months, start: "2025-02-28"},
		{name: "31st back to leap february", now: "2024-05-31", period: PeriodLast3Months, start: "2024-02-29"},
		{name: "31st back to november", now: "2025-05-31", period: PeriodLast6Months, start: "2024-11-30"},
		{name: "31st back to august", now: "2025-08-31", period: PeriodLast6Months, start: "2025-02-28"},
		{name: "mid month", now: "2025-07-20", period: PeriodLast6Months, start: "2025-01-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := WindowFor(tt.period, day(tt.now))
			require.True(t, ok)
			assert.Equal(t, day(tt.start), w.Start)
			assert.True(t, w.Contains(day(tt.start)))
			assert.False(t, w.Contains(day(tt.start).AddDate(0, 0, -1)))
		})
	}
}

func TestWindowFor_Unknown(t *testing.T) {
	_, ok := WindowFor(Period("Amanhã"), time.Now())
	assert.False(t, ok)

	_, ok = WindowFor(Period(All), time.Now())
	assert.False(t, ok)
}

func TestWindowFor_JanuaryPreviousMonth(t *testing.T) {
	now := time.Date(2025, time.January, 10, 8, 0, 0, 0, time.UTC)
	w, ok := WindowFor(PeriodPreviousMonth, now)
	require.True(t, ok)
	assert.Equal(t, day("2024-12-01"), w.Start)
	assert.Equal(t, day("2025-01-01"), w.End)
}

func TestWindow_ContainsIgnoresClock(t *testing.T) {
	w := Window{Start: day("2025-07-01"), End: day("2025-08-01")}

	assert.True(t, w.Contains(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, time.July, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, time.August, 1, 0, 0, 1, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)))
}
