// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CredentialOptions carries the account used against the schedule site.
type CredentialOptions struct {
	Username string
	Password string
}

// AddCredentialArgs wires credential flags on the provided command.
func AddCredentialArgs(cmd *cobra.Command, o *CredentialOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Account login. Prompted for when omitted.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password. Prompted for (masked) when omitted.")
}

// RangeOptions selects the inclusive date window and schedule variant.
type RangeOptions struct {
	Start   string
	End     string
	General bool
}

// AddRangeArgs wires date-window flags. Blank dates fall back to the
// current week's Monday.
func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Range start, example: --start="2025-06-09".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`Range end, example: --end="2025-06-15".`)
	cmd.Flags().BoolVar(&o.General, "general", false,
		"Download the general schedule instead of the personal one.")
}

// FileOptions picks where the downloaded document lands.
type FileOptions struct {
	Filename string
	Dir      string
}

// AddFileArgs wires output flags on the provided command.
func AddFileArgs(cmd *cobra.Command, o *FileOptions) {
	cmd.Flags().StringVarP(&o.Filename, "filename", "f", "",
		"Name for the saved file. Defaults to grafik.xlsx.")
	cmd.Flags().StringVar(&o.Dir, "dir", "",
		"Directory for the saved file. Defaults to the configured output directory.")
}

// YearOptions selects a year for week listings.
type YearOptions struct {
	Year int
}

// AddYearArgs wires the year flag on the provided command.
func AddYearArgs(cmd *cobra.Command, o *YearOptions) {
	cmd.Flags().IntVar(&o.Year, "year", 0,
		"Year to list. Defaults to the current one.")
}
