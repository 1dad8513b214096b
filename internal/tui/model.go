package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/diogo/symptrack/internal/api"
	"github.com/diogo/symptrack/internal/chat"
	apierrors "github.com/diogo/symptrack/internal/errors"
	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/render"
)

// PrefStore persists UI preferences
type PrefStore interface {
	Set(key, value string) error
}

// Options configures the chat model
type Options struct {
	Client api.ServiceClient
	Prefs  PrefStore
	Logger *zap.Logger
	Theme  models.ThemePreference

	// Markdown configures rendering of trusted assistant text
	Markdown render.Options

	// Clipboard writes text to the system clipboard (default: atotto/clipboard)
	Clipboard func(string) error
}

// Model is the chat controller
type Model struct {
	client    api.ServiceClient
	prefs     PrefStore
	logger    *zap.Logger
	clipboard func(string) error
	markdown  render.Options

	state *chat.State
	theme models.ThemePreference

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	sidebar  sidebar

	// cancel aborts the outstanding prediction request
	cancel context.CancelFunc

	notice         string
	ready          bool
	animationFrame int

	// Dimensions
	width  int
	height int
}

// NewModel creates the chat model. The theme is applied before the first frame.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	markdown := opts.Markdown
	if markdown.Width == 0 {
		markdown = render.DefaultOptions()
	}

	theme := models.ParseTheme(string(opts.Theme))
	UpdateTheme(theme)

	ta := textarea.New()
	ta.Placeholder = "Describe your symptoms..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Points

	m := Model{
		client:    opts.Client,
		prefs:     opts.Prefs,
		logger:    logger,
		clipboard: clip,
		markdown:  markdown,
		state:     chat.New(),
		theme:     theme,
		textarea:  ta,
		spinner:   s,
		sidebar:   newSidebar(),
	}
	m.applyComponentStyles()
	return m
}

// Init starts the catalog load; input works without waiting for it
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		loadCatalog(m.client),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case catalogLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("symptom catalog unavailable", zap.Error(msg.err))
			m.sidebar.setFailed()
		} else {
			m.sidebar.setCatalog(msg.catalog)
		}

	case predictionMsg:
		m.applyPrediction(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(msg.err))
			m.notice = "Could not copy to clipboard"
		} else {
			m.notice = "Copied last prediction to clipboard"
		}

	case spinner.TickMsg:
		if m.state.Loading() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.state.Loading() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}

	default:
		// Cursor blink and mouse wheel messages
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c":
		m.abandon()
		return m, tea.Quit

	case "esc":
		if m.sidebar.focused {
			m.focusInput()
			return m, nil
		}
		if m.state.Loading() {
			m.abandon()
			m.notice = "Request cancelled"
			m.refresh()
			return m, nil
		}
		return m, tea.Quit

	case "ctrl+t":
		m.toggleTheme()
		return m, nil

	case "ctrl+s":
		cmd = m.sidebar.toggle()
		if m.sidebar.focused {
			m.textarea.Blur()
		} else {
			m.focusInput()
		}
		m.layout()
		return m, cmd

	case "tab":
		if m.sidebar.focused {
			m.focusInput()
			return m, nil
		}
		m.textarea.Blur()
		cmd = m.sidebar.focus()
		m.layout()
		return m, cmd

	case "ctrl+r":
		m.sidebar.loading = true
		m.sidebar.failed = false
		return m, loadCatalog(m.client)

	case "ctrl+y":
		last := m.state.LastPrediction()
		if last == nil {
			m.notice = "No prediction to copy yet"
			return m, nil
		}
		return m, copyToClipboard(m.clipboard, render.SanitizeLine(last.Summary()))

	case "f1", "f2", "f3", "f4":
		idx := int(msg.String()[1] - '1')
		m.quickAction(models.QuickActions[idx].ID)
		return m, nil

	case "pgup", "pgdown":
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.sidebar.focused {
		return m.handleSidebarKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.submit()
	}

	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.sidebar.moveUp()
		return m, nil
	case "down":
		m.sidebar.moveDown()
		return m, nil
	case "enter":
		if s, ok := m.sidebar.selected(); ok {
			m.textarea.SetValue(models.AppendToInput(m.textarea.Value(), s))
			m.textarea.CursorEnd()
			m.focusInput()
		}
		return m, nil
	}
	return m, m.sidebar.update(msg)
}

// submit handles enter in the chat input
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := m.textarea.Value()

	if id, ok := chat.ParseQuickCommand(input); ok {
		if id == "exit" || id == "quit" {
			m.abandon()
			return m, tea.Quit
		}
		m.textarea.Reset()
		m.quickAction(id)
		return m, nil
	}

	seq, ok := m.state.Submit(input)
	if !ok {
		return m, nil
	}
	m.textarea.Reset()
	m.notice = ""
	m.animationFrame = 0

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.logger.Debug("prediction dispatched", zap.Uint64("seq", seq))

	m.refresh()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		requestPrediction(ctx, m.client, seq, strings.TrimSpace(input)),
		m.spinner.Tick,
		animationTick(),
	)
}

func (m *Model) applyPrediction(msg predictionMsg) {
	var current bool
	if msg.err != nil {
		current = m.state.Fail(msg.seq)
		if current {
			m.logger.Error("prediction failed",
				zap.Uint64("seq", msg.seq),
				zap.String("kind", failureKind(msg.err)),
				zap.Int("status", apierrors.GetHTTPStatus(msg.err)),
				zap.Error(msg.err))
		} else {
			m.logger.Debug("stale prediction failure dropped", zap.Uint64("seq", msg.seq), zap.Error(msg.err))
		}
	} else {
		current = m.state.Resolve(msg.seq, msg.result)
		if !current {
			m.logger.Debug("stale prediction appended", zap.Uint64("seq", msg.seq))
		}
	}

	if current && m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.refresh()
	m.viewport.GotoBottom()
}

// abandon cancels the outstanding request, if any
func (m *Model) abandon() {
	if seq := m.state.Cancel(); seq != 0 {
		m.logger.Info("prediction cancelled", zap.Uint64("seq", seq))
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) quickAction(id string) {
	if !m.state.QuickAction(id) {
		m.logger.Debug("unknown quick action ignored", zap.String("id", id))
		return
	}
	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	if m.prefs != nil {
		if err := m.prefs.Set(models.ThemeKey, string(m.theme)); err != nil {
			m.logger.Warn("failed to persist theme", zap.Error(err))
		}
	}
	UpdateTheme(m.theme)
	m.applyComponentStyles()
	m.refresh()
}

func (m *Model) focusInput() {
	m.sidebar.blur()
	m.textarea.Focus()
}

func (m *Model) applyComponentStyles() {
	m.textarea.FocusedStyle.CursorLine = lipgloss.NewStyle()
	m.textarea.FocusedStyle.Base = lipgloss.NewStyle().Foreground(palette.Text)
	m.textarea.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(palette.TextDim)
	m.textarea.BlurredStyle = m.textarea.FocusedStyle
	m.spinner.Style = loadingStyle
}

// layout sizes the components after a resize or a sidebar toggle
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	headerHeight := 3 // Header panel with border
	inputHeight := 5  // Input panel with border
	footerHeight := 3 // Typing indicator, notice line and status bar
	borders := 2

	vpHeight := m.height - headerHeight - inputHeight - footerHeight - borders
	if vpHeight < 5 {
		vpHeight = 5
	}

	mainWidth := m.width
	if m.sidebar.open {
		mainWidth -= sidebarWidth
	}
	vpWidth := mainWidth - 4
	if vpWidth < 20 {
		vpWidth = 20
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(m.width - 4)
	m.refresh()
}

// refresh re-renders the transcript into the viewport
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
}

// failureKind names the error class for logging
func failureKind(err error) string {
	switch {
	case apierrors.IsTimeoutError(err):
		return "timeout"
	case apierrors.IsNetworkError(err):
		return "network"
	case apierrors.IsAPIError(err):
		return "status"
	case apierrors.IsParseError(err):
		return "parse"
	default:
		return "unknown"
	}
}

// Run starts the chat TUI
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}
