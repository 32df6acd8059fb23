package tui

import "github.com/charmbracelet/lipgloss/v2"

// Styles centralizes Lip Gloss styles for the form UI, with a light and a
// dark variant.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Hint    lipgloss.Style
	Help    lipgloss.Style

	Busy    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// DarkStyles returns the palette used on dark backgrounds.
func DarkStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Busy:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// LightStyles returns the palette used on light backgrounds.
func LightStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("162")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("162")),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Busy:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
	}
}
