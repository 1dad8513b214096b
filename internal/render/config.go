package render

import (
	"github.com/diogo/symptrack/internal/config"
	"github.com/diogo/symptrack/internal/models"
)

// OptionsFromConfig builds render options from the user configuration and
// the active theme.
func OptionsFromConfig(cfg config.Config, theme models.ThemePreference, width int) Options {
	return DefaultOptions().
		WithWidth(width).
		WithTheme(theme).
		WithEmoji(cfg.Markdown.EnableEmoji).
		WithPreserveNewLines(cfg.Markdown.PreserveNewLines)
}
