package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Szafranee/GrafikPlusWeb/pkg/form"
	"github.com/Szafranee/GrafikPlusWeb/pkg/prefs"
	"github.com/Szafranee/GrafikPlusWeb/pkg/runner/download"
	"github.com/Szafranee/GrafikPlusWeb/pkg/schedule"
	"github.com/Szafranee/GrafikPlusWeb/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the schedule download form",
		Example: `
grafikplus ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := prefs.LoadConfig()
			if err != nil {
				return err
			}
			store, err := prefs.Load(cfg)
			if err != nil {
				return err
			}

			state := form.New(time.Now())
			if last, ok := store.Get(prefs.KeyLastUsername); ok {
				state.SetCredentials(last, "")
			}

			client := schedule.NewClient(cfg.BackendURL())
			saver := schedule.DirSaver{Dir: cfg.OutputDir()}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// Preference edits made outside this process (another
			// terminal toggling the theme) restyle the running UI.
			var events <-chan prefs.Event
			if w, ok := store.(prefs.Watcher); ok {
				if ch, err := w.Watch(ctx); err == nil {
					events = ch
				}
			}

			return tui.Run(tui.Options{
				State: state,
				Theme: prefs.NewThemeController(store, nil),
				Watch: events,
				Submit: func(ctx context.Context) error {
					d := &download.Download{
						State:  state,
						Client: client,
						Saver:  saver,
						Prefs:  store,
					}
					// The outcome lands on the status line; the UI loop
					// must not die on a failed download.
					_ = d.Do(ctx)
					return nil
				},
			})
		},
	}

	topLevel.AddCommand(cmd)
}
