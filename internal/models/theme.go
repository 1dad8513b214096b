package models

// ThemePreference is the persisted light/dark choice
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"

	// DefaultTheme applies when nothing valid is stored
	DefaultTheme = ThemeDark

	// ThemeKey is the preference-store key holding the theme
	ThemeKey = "theme"
)

// ParseTheme returns the preference for a stored value, falling back to dark
func ParseTheme(v string) ThemePreference {
	switch ThemePreference(v) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return DefaultTheme
	}
}

// Toggle returns the opposite theme
func (t ThemePreference) Toggle() ThemePreference {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Icon returns the toggle glyph: a sun while dark (switch to light), a moon while light
func (t ThemePreference) Icon() string {
	if t == ThemeLight {
		return "☾"
	}
	return "☀"
}
