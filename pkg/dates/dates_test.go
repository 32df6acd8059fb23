package dates

import (
	"testing"
	"time"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"monday", time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC), "2025-06-09"},
		{"wednesday", time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC), "2025-06-09"},
		{"saturday", time.Date(2025, time.June, 14, 23, 59, 0, 0, time.UTC), "2025-06-09"},
		{"sunday belongs to previous week", time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC), "2025-06-09"},
		{"sunday jan crosses year", time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC), "2026-12-28"},
		{"new year midweek", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "2025-12-29"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MondayOf(tc.day).Format(LayoutISO)
			if got != tc.want {
				t.Fatalf("MondayOf(%s) = %s, want %s", tc.day.Format(LayoutISO), got, tc.want)
			}
		})
	}
}

func TestYearBounds(t *testing.T) {
	min, max := YearBounds(time.Date(2025, time.July, 20, 15, 30, 0, 0, time.UTC))
	if got := min.Format(LayoutISO); got != "2025-01-01" {
		t.Fatalf("min = %s, want 2025-01-01", got)
	}
	if got := max.Format(LayoutISO); got != "2025-12-31" {
		t.Fatalf("max = %s, want 2025-12-31", got)
	}
}

func TestWeekWindows(t *testing.T) {
	windows := WeekWindows(2025)
	if len(windows) != 52 {
		t.Fatalf("expected 52 windows, got %d", len(windows))
	}

	first := windows[0]
	if first.Number != 1 {
		t.Fatalf("first window number = %d", first.Number)
	}
	if got := first.Start.Format(LayoutISO); got != "2025-01-01" {
		t.Fatalf("first window starts %s", got)
	}
	if got := first.End.Format(LayoutISO); got != "2025-01-07" {
		t.Fatalf("first window ends %s", got)
	}

	for i := 1; i < len(windows); i++ {
		prev, cur := windows[i-1], windows[i]
		if cur.Number != prev.Number+1 {
			t.Fatalf("window %d out of order", i)
		}
		if !cur.Start.Equal(prev.End.AddDate(0, 0, 1)) {
			t.Fatalf("window %d not contiguous: %s after %s", cur.Number,
				cur.Start.Format(LayoutISO), prev.End.Format(LayoutISO))
		}
	}
}

func TestWindowLabel(t *testing.T) {
	w := Window{
		Number: 7,
		Start:  time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, time.February, 16, 0, 0, 0, 0, time.UTC),
	}
	want := "Tydzień 7 (10.02.2025 - 16.02.2025)"
	if got := w.Label(); got != want {
		t.Fatalf("Label() = %q, want %q", got, want)
	}
}

func TestCurrentWindow(t *testing.T) {
	tests := []struct {
		day  time.Time
		want int
	}{
		{time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC), 1},
		{time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), 52},
	}
	for _, tc := range tests {
		if got := CurrentWindow(tc.day); got != tc.want {
			t.Fatalf("CurrentWindow(%s) = %d, want %d", tc.day.Format(LayoutISO), got, tc.want)
		}
	}
}
