package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Szafranee/GrafikPlusWeb/pkg/prefs"
	"github.com/Szafranee/GrafikPlusWeb/pkg/runner/ping"
	"github.com/Szafranee/GrafikPlusWeb/pkg/schedule"
)

func addPing(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "check that the schedule backend is reachable",
		Example: `
grafikplus ping
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prefs.LoadConfig()
			if err != nil {
				return err
			}
			p := ping.Ping{
				Client:  schedule.NewClient(cfg.BackendURL()),
				Backend: cfg.BackendURL(),
			}
			err = p.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
