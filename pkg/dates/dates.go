// Package dates derives the default schedule window and the selectable
// bounds shown by the form.
package dates

import (
	"fmt"
	"time"
)

const (
	// LayoutISO is the wire format for schedule dates.
	LayoutISO = "2006-01-02"

	layoutPL = "02.01.2006"
)

// MondayOf returns the Monday of the ISO week containing t. Sunday belongs
// to the previous week, so it normalizes to the Monday six days back. The
// result may land in a different year than t; callers accept that.
func MondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// YearBounds returns Jan 1 and Dec 31 of t's year in t's location.
func YearBounds(t time.Time) (time.Time, time.Time) {
	min := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	max := time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location())
	return min, max
}

// Window is one numbered seven-day slice of a year.
type Window struct {
	Number int
	Start  time.Time
	End    time.Time
}

// Label renders the window the way the schedule site names weeks,
// for example "Tydzień 7 (10.02.2025 - 16.02.2025)".
func (w Window) Label() string {
	return fmt.Sprintf("Tydzień %d (%s - %s)", w.Number, w.Start.Format(layoutPL), w.End.Format(layoutPL))
}

// WeekWindows slices the year into 52 consecutive seven-day windows
// counted from Jan 1. The slicing intentionally ignores ISO week
// boundaries; it mirrors how the schedule site numbers its weeks.
func WeekWindows(year int) []Window {
	windows := make([]Window, 0, 52)
	for i := 1; i <= 52; i++ {
		start := time.Date(year, time.January, (i-1)*7+1, 0, 0, 0, 0, time.UTC)
		windows = append(windows, Window{
			Number: i,
			Start:  start,
			End:    start.AddDate(0, 0, 6),
		})
	}
	return windows
}

// CurrentWindow returns the 1-based number of the window containing t,
// clamped to [1, 52].
func CurrentWindow(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	n := int(t.Sub(jan1).Hours()/(7*24)) + 1
	if n < 1 {
		n = 1
	}
	if n > 52 {
		n = 52
	}
	return n
}
