package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/symptrack/internal/api"
	"github.com/diogo/symptrack/internal/models"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	catalogLoadedMsg struct {
		catalog models.Catalog
		err     error
	}
	predictionMsg struct {
		seq    uint64
		result *models.PredictResult
		err    error
	}
	clipboardMsg struct {
		err error
	}
)

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

func loadCatalog(client api.ServiceClient) tea.Cmd {
	return func() tea.Msg {
		catalog, err := client.FetchSymptoms(context.Background())
		return catalogLoadedMsg{catalog: catalog, err: err}
	}
}

func requestPrediction(ctx context.Context, client api.ServiceClient, seq uint64, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Predict(ctx, text)
		return predictionMsg{seq: seq, result: result, err: err}
	}
}

func copyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: write(text)}
	}
}
