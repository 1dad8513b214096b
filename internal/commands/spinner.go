package commands

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/render"
)

// palette colors CLI output; it follows the stored theme once loaded
var palette = render.DarkTheme

func usePalette(pref models.ThemePreference) {
	palette = render.ThemeFor(pref)
}

// spinner draws the "analyzing" line on stderr while a one-shot prediction runs.
// It borrows frames and pacing from the bubbles spinner used by the chat.
type spinner struct {
	out     io.Writer
	message string
	style   bspinner.Spinner
	theme   render.TUITheme

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newSpinner(out io.Writer, message string) *spinner {
	return &spinner{
		out:     out,
		message: message,
		style:   bspinner.Dot,
		theme:   palette,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *spinner) start() {
	go s.run()
}

func (s *spinner) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.style.FPS)
	defer ticker.Stop()

	fmt.Fprint(s.out, "\033[?25l")
	for frame := 0; ; frame++ {
		select {
		case <-s.stop:
			fmt.Fprint(s.out, "\r\033[K\033[?25h")
			return
		case <-ticker.C:
			fmt.Fprint(s.out, "\r\033[K"+s.frame(frame))
		}
	}
}

// frame renders glyph, message and a trail of up to three dots
func (s *spinner) frame(n int) string {
	gradient := s.theme.Gradient()
	glyph := lipgloss.NewStyle().
		Foreground(gradient[n%len(gradient)]).
		Bold(true).
		Render(s.style.Frames[n%len(s.style.Frames)])

	trail := strings.Repeat(".", (n/3)%4)
	return fmt.Sprintf("%s %s%s",
		glyph,
		lipgloss.NewStyle().Foreground(s.theme.Text).Render(s.message),
		lipgloss.NewStyle().Foreground(s.theme.TextDim).Render(trail))
}

func (s *spinner) halt() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *spinner) stopWithSuccess(message string) {
	s.halt()
	fmt.Fprintln(s.out, lipgloss.NewStyle().Foreground(s.theme.Secondary).Bold(true).Render("✓ "+message))
}

func (s *spinner) stopWithError() {
	s.halt()
}
