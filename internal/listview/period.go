package listview

import "time"

// Period is a named date window used by period selectors.
type Period string

// Known periods.
const (
	PeriodCurrentMonth  Period = "Mês Atual"
	PeriodPreviousMonth Period = "Mês Anterior"
	PeriodLast30Days    Period = "Últimos 30 dias"
	PeriodLast3Months   Period = "Últimos 3 meses"
	PeriodLast6Months   Period = "Últimos 6 meses"
	PeriodCurrentYear   Period = "Ano Atual"
)

// Window is a half-open range of calendar days [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar day of t is inside the window.
func (w Window) Contains(t time.Time) bool {
	day := calendarDay(t)
	return !day.Before(w.Start) && day.Before(w.End)
}

// WindowFor resolves a period relative to now. It returns false for periods
// it does not know.
func WindowFor(p Period, now time.Time) (Window, bool) {
	today := calendarDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch p {
	case PeriodCurrentMonth:
		return Window{Start: firstOfMonth, End: firstOfMonth.AddDate(0, 1, 0)}, true
	case PeriodPreviousMonth:
		return Window{Start: firstOfMonth.AddDate(0, -1, 0), End: firstOfMonth}, true
	case PeriodLast30Days:
		return Window{Start: today.AddDate(0, 0, -29), End: tomorrow}, true
	case PeriodLast3Months:
		return Window{Start: monthsBefore(today, 3), End: tomorrow}, true
	case PeriodLast6Months:
		return Window{Start: monthsBefore(today, 6), End: tomorrow}, true
	case PeriodCurrentYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}, true
	default:
		return Window{}, false
	}
}

// monthsBefore steps n months back, keeping the day of month but never
// spilling into the next month: May 31 minus three months is February 28.
func monthsBefore(day time.Time, n int) time.Time {
	first := time.Date(day.Year(), day.Month()-time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(day.Day(), last)-1)
}

// calendarDay drops the clock part of t, keeping its local calendar date.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
