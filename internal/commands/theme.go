package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/symptrack/internal/models"
)

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the chat theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(models.ThemeLight), string(models.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := a.deps.OpenPrefs()
			if err != nil {
				return fmt.Errorf("failed to open preferences: %w", err)
			}

			current := models.ParseTheme(prefs.GetOr(models.ThemeKey, string(models.DefaultTheme)))
			if len(args) == 0 {
				fmt.Fprintf(a.deps.Stdout, "%s %s\n", current.Icon(), current)
				return nil
			}

			next := current.Toggle()
			if args[0] != "toggle" {
				next = models.ParseTheme(args[0])
			}

			if err := prefs.Set(models.ThemeKey, string(next)); err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}
			fmt.Fprintf(a.deps.Stdout, "%s %s\n", next.Icon(), next)
			return nil
		},
	}
}
