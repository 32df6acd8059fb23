package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "grafikplus",
		Short: base.Wrap80("Download work schedules from the GrafikPlus backend."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addFetch(topLevel)
	addWeeks(topLevel)
	addTheme(topLevel)
	addPing(topLevel)
	addVersion(topLevel)
}
