package prefs

import (
	"github.com/muesli/termenv"
)

// Theme values. Exactly these two; Toggle never produces anything else.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DetectDarkBackground reports whether the terminal background is dark.
// It stands in for the OS-level color-scheme preference.
func DetectDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ThemeController owns the light/dark flag and keeps it persisted.
type ThemeController struct {
	store   Store
	current string
}

// NewThemeController loads the persisted theme, defaulting to the
// terminal's background preference when nothing is stored. hasDark is
// injectable so tests can simulate either environment; nil means
// DetectDarkBackground.
func NewThemeController(store Store, hasDark func() bool) *ThemeController {
	if hasDark == nil {
		hasDark = DetectDarkBackground
	}

	current, ok := store.Get(KeyTheme)
	if !ok || current == "" {
		current = ThemeLight
		if hasDark() {
			current = ThemeDark
		}
	}

	return &ThemeController{store: store, current: current}
}

// Current returns the active theme.
func (c *ThemeController) Current() string {
	return c.current
}

// Dark reports whether the active theme is the dark one.
func (c *ThemeController) Dark() bool {
	return c.current == ThemeDark
}

// Reload re-reads the persisted theme, picking up edits made outside
// this process. The current value stays when nothing is stored.
func (c *ThemeController) Reload() string {
	if v, ok := c.store.Get(KeyTheme); ok && v != "" {
		c.current = v
	}
	return c.current
}

// Toggle flips between light and dark, persists the result immediately,
// and returns the new value. A value that is not "light" flips to light,
// mirroring how the form behaved originally.
func (c *ThemeController) Toggle() string {
	if c.current == ThemeLight {
		c.current = ThemeDark
	} else {
		c.current = ThemeLight
	}
	_ = c.store.Set(KeyTheme, c.current)
	return c.current
}
