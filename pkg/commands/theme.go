package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Szafranee/GrafikPlusWeb/pkg/prefs"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "show the active UI theme",
		Example: `
grafikplus theme
grafikplus theme toggle
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := themeController()
			if err != nil {
				return err
			}
			fmt.Println(c.Current())
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle",
		Short: "switch between the light and dark theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := themeController()
			if err != nil {
				return err
			}
			fmt.Println(c.Toggle())
			return nil
		},
	}

	cmd.AddCommand(toggle)
	topLevel.AddCommand(cmd)
}

func themeController() (*prefs.ThemeController, error) {
	store, err := prefs.Load(nil)
	if err != nil {
		return nil, err
	}
	return prefs.NewThemeController(store, nil), nil
}
