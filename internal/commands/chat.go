package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/render"
	"github.com/diogo/symptrack/internal/tui"
)

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive symptom chat",
		Long: `Start the interactive symptom chat.

Type your symptoms and press Enter. F1-F4 trigger the quick actions,
Tab opens the symptom list, Ctrl+T switches theme, Ctrl+Y copies the
last prediction and Esc cancels a running request (or quits).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChat()
		},
	}
}

func (a *app) runChat() error {
	prefs, err := a.deps.OpenPrefs()
	if err != nil {
		a.logger.Warn("preferences unavailable", zap.Error(err))
	}
	theme := models.DefaultTheme
	if prefs != nil {
		theme = models.ParseTheme(prefs.GetOr(models.ThemeKey, string(models.DefaultTheme)))
	}

	client, err := a.deps.NewClient(a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	a.logger.Info("chat started", zap.String("theme", string(theme)))

	opts := tui.Options{
		Client:    client,
		Logger:    a.logger,
		Theme:     theme,
		Markdown:  render.OptionsFromConfig(a.cfg, theme, 80),
		Clipboard: a.deps.Clipboard,
	}
	// A nil *Prefs must not become a non-nil interface
	if prefs != nil {
		opts.Prefs = prefs
	}
	return a.deps.RunChat(opts)
}
