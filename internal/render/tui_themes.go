package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/symptrack/internal/models"
)

// TUITheme defines the color scheme for the TUI interface
type TUITheme struct {
	Name models.ThemePreference

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

var (
	// DarkTheme is based on the Tokyo Night palette
	DarkTheme = TUITheme{
		Name: models.ThemeDark,

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#9ece6a"),
		Accent:    lipgloss.Color("#bb9af7"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),
	}

	// LightTheme is based on Tokyo Night Day
	LightTheme = TUITheme{
		Name: models.ThemeLight,

		Background: lipgloss.Color("#e1e2e7"),
		Surface:    lipgloss.Color("#d0d5e3"),
		Border:     lipgloss.Color("#a8aecb"),

		Primary:   lipgloss.Color("#2e7de9"),
		Secondary: lipgloss.Color("#587539"),
		Accent:    lipgloss.Color("#9854f1"),
		Warning:   lipgloss.Color("#8c6c3e"),
		Error:     lipgloss.Color("#f52a65"),

		Text:     lipgloss.Color("#3760bf"),
		TextDim:  lipgloss.Color("#6172b0"),
		TextMute: lipgloss.Color("#a1a6c5"),
	}
)

// ThemeFor returns the palette for a theme preference
func ThemeFor(pref models.ThemePreference) TUITheme {
	if models.ParseTheme(string(pref)) == models.ThemeLight {
		return LightTheme
	}
	return DarkTheme
}

// HealthColor picks the badge color for a health status
func (t TUITheme) HealthColor(h models.HealthStatus) lipgloss.Color {
	switch h {
	case models.HealthSerious:
		return t.Error
	case models.HealthMild:
		return t.Warning
	case models.HealthAnalyzing:
		return t.Accent
	default:
		return t.Secondary
	}
}

// SeverityColor picks the card color for a severity bucket
func (t TUITheme) SeverityColor(s models.Severity) lipgloss.Color {
	return t.HealthColor(s.HealthStatus())
}

// Gradient is the color cycle used by loading animations
func (t TUITheme) Gradient() []lipgloss.Color {
	return []lipgloss.Color{t.Primary, t.Accent, t.Error, t.Warning, t.Secondary}
}
