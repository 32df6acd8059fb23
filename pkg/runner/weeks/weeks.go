// Package weeks prints the numbered week windows of a year, the same
// windows the schedule site offers in its pickers.
package weeks

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Szafranee/GrafikPlusWeb/pkg/dates"
)

type Weeks struct {
	// Year to list; zero means the current year.
	Year int

	// Now is injectable for tests; zero means time.Now.
	Now time.Time
}

func (w *Weeks) Do(ctx context.Context) error {
	now := w.Now
	if now.IsZero() {
		now = time.Now()
	}
	year := w.Year
	if year == 0 {
		year = now.Year()
	}

	current := 0
	if year == now.Year() {
		current = dates.CurrentWindow(now)
	}

	title := color.New(color.Bold, color.Underline)
	_, _ = title.Printf("Tygodnie %d\n", year)

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, win := range dates.WeekWindows(year) {
		marker := " "
		if win.Number == current {
			marker = "▸"
		}
		tbl.AddRow(marker, win.Label())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}
