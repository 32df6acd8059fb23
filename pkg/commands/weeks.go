package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Szafranee/GrafikPlusWeb/pkg/commands/options"
	"github.com/Szafranee/GrafikPlusWeb/pkg/runner/weeks"
)

func addWeeks(topLevel *cobra.Command) {
	yo := &options.YearOptions{}

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "list the numbered week windows of a year",
		Example: `
grafikplus weeks
grafikplus weeks --year=2026
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := weeks.Weeks{Year: yo.Year}
			err := w.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddYearArgs(cmd, yo)

	topLevel.AddCommand(cmd)
}
