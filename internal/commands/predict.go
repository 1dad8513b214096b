package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apierrors "github.com/diogo/symptrack/internal/errors"
	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/render"
	"github.com/diogo/symptrack/internal/tui"
)

func newPredictCmd(a *app) *cobra.Command {
	var (
		fileFlag string
		copyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "predict [symptoms]",
		Short: "Predict a condition from a symptom description",
		Long: `Send a free-text symptom description to the prediction server and
print the predicted condition.

The text comes from the argument, from --file, or from stdin. Output is
plain text when stdout is not a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(args, fileFlag)
			if err != nil {
				return err
			}
			return a.runPredict(cmd.Context(), text, copyFlag || a.cfg.CopyToClipboard)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read symptoms from file")
	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the prediction summary to the clipboard")
	return cmd
}

// readInput picks the symptom text from --file, the argument or stdin
func (a *app) readInput(args []string, file string) (string, error) {
	var text string
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		text = string(data)
	case len(args) > 0:
		text = args[0]
	case a.deps.HasStdin():
		data, err := io.ReadAll(a.deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", apierrors.ErrEmptyInput
	}
	return text, nil
}

func (a *app) runPredict(ctx context.Context, text string, copyResult bool) error {
	client, err := a.deps.NewClient(a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	tty := a.deps.IsTTY()

	var spin *spinner
	if tty {
		a.applyStoredTheme()
		spin = newSpinner(a.deps.Stderr, "Analyzing symptoms")
		spin.start()
	}

	a.logger.Debug("one-shot prediction", zap.String("input", truncate(text, 80)))
	result, err := client.Predict(ctx, text)
	if err != nil {
		if spin != nil {
			spin.stopWithError()
		}
		a.logger.Error("prediction failed", zap.Error(err))
		return fmt.Errorf("prediction failed: %w", err)
	}
	if spin != nil {
		spin.stopWithSuccess("Done")
	}
	if result == nil {
		result = &models.PredictResult{}
	}

	if result.IsError() {
		return fmt.Errorf("server rejected the input: %s", render.SanitizeLine(result.Error))
	}

	p := result.Prediction
	if p == nil {
		p = &models.Prediction{}
	}

	if tty {
		width := getTerminalWidth() - 4
		if width > 100 {
			width = 100
		}
		fmt.Fprintln(a.deps.Stdout, lipgloss.NewStyle().Foreground(palette.Primary).Bold(true).Render("✚ SympTrack"))
		fmt.Fprintln(a.deps.Stdout, tui.RenderCard(p, width))
	} else {
		fmt.Fprint(a.deps.Stdout, formatPlainPrediction(p))
	}

	if copyResult {
		a.copySummary(p)
	}
	return nil
}

// applyStoredTheme matches card colors to the chat theme
func (a *app) applyStoredTheme() {
	prefs, err := a.deps.OpenPrefs()
	if err != nil {
		a.logger.Debug("preferences unavailable", zap.Error(err))
		return
	}
	theme := models.ParseTheme(prefs.GetOr(models.ThemeKey, string(models.DefaultTheme)))
	tui.UpdateTheme(theme)
	usePalette(theme)
}

// formatPlainPrediction renders a card as undecorated lines
func formatPlainPrediction(p *models.Prediction) string {
	var b strings.Builder
	b.WriteString(render.SanitizeLine(p.DiseaseName()))
	b.WriteString("\n")
	b.WriteString(p.SeverityLine())
	b.WriteString("\n")
	if p.HasSymptoms {
		tags := p.Tags()
		for i, t := range tags {
			tags[i] = render.SanitizeLine(t)
		}
		b.WriteString("Based on: ")
		b.WriteString(strings.Join(tags, ", "))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *app) copySummary(p *models.Prediction) {
	if err := a.deps.Clipboard(render.SanitizeLine(p.Summary())); err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(err))
		warn := lipgloss.NewStyle().Foreground(palette.Error).Render(
			fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
		)
		fmt.Fprintln(a.deps.Stderr, warn)
		return
	}
	fmt.Fprintln(a.deps.Stderr, lipgloss.NewStyle().Foreground(palette.Secondary).Render("✓ Copied to clipboard"))
}
