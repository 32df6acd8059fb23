package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Szafranee/GrafikPlusWeb/pkg/commands/options"
	"github.com/Szafranee/GrafikPlusWeb/pkg/form"
	"github.com/Szafranee/GrafikPlusWeb/pkg/prefs"
	"github.com/Szafranee/GrafikPlusWeb/pkg/runner/download"
	"github.com/Szafranee/GrafikPlusWeb/pkg/schedule"
)

func addFetch(topLevel *cobra.Command) {
	co := &options.CredentialOptions{}
	ro := &options.RangeOptions{}
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "download a schedule for a date range",
		Example: `
grafikplus fetch --start=2025-06-09 --end=2025-06-15
grafikplus fetch -u jan.kowalski --general -f czerwiec.xlsx
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

			if err := promptCredentials(store, co); err != nil {
				return err
			}

			state := form.New(time.Now())
			state.SetCredentials(co.Username, co.Password)
			snap := state.Snapshot()
			start, end := snap.StartDate, snap.EndDate
			if ro.Start != "" {
				start = ro.Start
			}
			if ro.End != "" {
				end = ro.End
			}
			state.SetRange(start, end)
			if ro.General {
				state.SetType(form.General)
			}
			state.SetFilename(fo.Filename)

			dir := fo.Dir
			if dir == "" {
				dir = cfg.OutputDir()
			}

			d := &download.Download{
				State:  state,
				Client: schedule.NewClient(cfg.BackendURL()),
				Saver:  schedule.DirSaver{Dir: dir},
				Prefs:  store,
			}
			if err := d.Do(context.Background()); err != nil {
				fail := color.New(color.FgRed)
				_, _ = fail.Println(state.Snapshot().Message)
				return oo.HandleError(err)
			}

			ok := color.New(color.FgGreen)
			_, _ = ok.Printf("%s (%s)\n", download.MsgSuccess, d.SavedPath)
			return nil
		},
	}

	options.AddCredentialArgs(cmd, co)
	options.AddRangeArgs(cmd, ro)
	options.AddFileArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

// promptCredentials fills in whatever the flags left blank. The username
// prompt is pre-filled with the last submitted one.
func promptCredentials(store prefs.Store, co *options.CredentialOptions) error {
	if co.Username == "" {
		def, _ := store.Get(prefs.KeyLastUsername)
		prompt := promptui.Prompt{
			Label:   "Login",
			Default: def,
			Validate: func(input string) error {
				if input == "" {
					return fmt.Errorf("login is required")
				}
				return nil
			},
		}
		username, err := prompt.Run()
		if err != nil {
			return err
		}
		co.Username = username
	}

	if co.Password == "" {
		prompt := promptui.Prompt{
			Label: "Hasło",
			Mask:  '*',
		}
		password, err := prompt.Run()
		if err != nil {
			return err
		}
		co.Password = password
	}

	return nil
}
