package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/symptrack/internal/models"
)

func TestThemeFor(t *testing.T) {
	tests := []struct {
		pref models.ThemePreference
		want models.ThemePreference
	}{
		{models.ThemeDark, models.ThemeDark},
		{models.ThemeLight, models.ThemeLight},
		{"", models.ThemeDark},
		{"solarized", models.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			if got := ThemeFor(tt.pref).Name; got != tt.want {
				t.Errorf("ThemeFor(%q).Name = %s, want %s", tt.pref, got, tt.want)
			}
		})
	}
}

func TestThemes_AllColorsDefined(t *testing.T) {
	for _, theme := range []TUITheme{DarkTheme, LightTheme} {
		colors := map[string]lipgloss.Color{
			"background": theme.Background,
			"surface":    theme.Surface,
			"border":     theme.Border,
			"primary":    theme.Primary,
			"secondary":  theme.Secondary,
			"accent":     theme.Accent,
			"warning":    theme.Warning,
			"error":      theme.Error,
			"text":       theme.Text,
			"textDim":    theme.TextDim,
			"textMute":   theme.TextMute,
		}
		for name, c := range colors {
			if string(c) == "" {
				t.Errorf("theme %s has empty %s color", theme.Name, name)
			}
		}
	}

	if DarkTheme.Background == LightTheme.Background {
		t.Error("dark and light themes should differ")
	}
}

func TestHealthColor(t *testing.T) {
	theme := DarkTheme
	tests := []struct {
		status models.HealthStatus
		want   lipgloss.Color
	}{
		{models.HealthGood, theme.Secondary},
		{models.HealthMild, theme.Warning},
		{models.HealthSerious, theme.Error},
		{models.HealthAnalyzing, theme.Accent},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := theme.HealthColor(tt.status); got != tt.want {
				t.Errorf("HealthColor(%s) = %s, want %s", tt.status, got, tt.want)
			}
		})
	}

	if theme.SeverityColor(models.SeverityHigh) != theme.Error {
		t.Error("high severity should use the error color")
	}
}

func TestGradientFollowsTheme(t *testing.T) {
	dark := DarkTheme.Gradient()
	light := LightTheme.Gradient()

	if len(dark) == 0 || len(dark) != len(light) {
		t.Fatalf("gradients should be non-empty and equal length, got %d and %d", len(dark), len(light))
	}
	if dark[0] != DarkTheme.Primary || light[0] != LightTheme.Primary {
		t.Error("gradient should start at the primary color")
	}
	if dark[0] == light[0] {
		t.Error("light and dark gradients should differ")
	}
}
