package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/render"
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	mainWidth := m.width
	if m.sidebar.open {
		mainWidth -= sidebarWidth
	}

	header := m.renderHeader(m.width - 2)

	messages := messagesAreaStyle.
		Width(mainWidth - 2).
		Height(m.viewport.Height).
		Render(m.viewport.View())

	body := messages
	if m.sidebar.open {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.view(m.viewport.Height), messages)
	}

	input := inputPanelStyle.Width(m.width - 2).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You")+hintStyle.Render("  Enter to send"),
		m.textarea.View(),
	))

	// Reserve the line so the layout does not jump
	indicator := ""
	if m.state.Loading() {
		indicator = m.renderTypingIndicator()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		indicator,
		input,
		noticeStyle.Render(m.notice),
		m.renderStatusBar(m.width),
	)
}

// renderHeader shows the title, the health badge and the theme icon
func (m Model) renderHeader(width int) string {
	status := m.state.Status()
	title := titleStyle.Render("✚ SympTrack AI")
	badge := badgeStyle(status).Render(status.Icon() + " " + status.Label())
	icon := themeIconStyle.Render(m.theme.Icon())

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", badge)
	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + icon)
}

// renderTranscript draws the welcome text and every message
func (m Model) renderTranscript() string {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	content.WriteString(assistantLabelStyle.Render("✚ SympTrack"))
	content.WriteString("\n")
	content.WriteString(assistantBubbleStyle.Width(bubbleWidth).Render(m.markdownText(models.WelcomeMarkdown(), bubbleWidth-4)))
	content.WriteString("\n")

	for _, msg := range m.state.Messages() {
		content.WriteString("\n")
		content.WriteString(m.renderMessage(msg, bubbleWidth))
		content.WriteString("\n")
	}

	return content.String()
}

func (m Model) renderMessage(msg models.Message, width int) string {
	switch {
	case msg.Role == models.RoleUser:
		label := userLabelStyle.Render("● You")
		return label + "\n" + userBubbleStyle.Width(width).Render(render.SanitizeText(msg.Text))

	case msg.Role == models.RoleError:
		label := assistantLabelStyle.Render("✚ SympTrack")
		return label + "\n" + errorBubbleStyle.Width(width).Render("⚠ "+render.SanitizeText(msg.Text))

	case msg.IsCard():
		label := assistantLabelStyle.Render("✚ SympTrack")
		return label + "\n" + RenderCard(msg.Prediction, width)

	default:
		// Canned replies only; server text never reaches markdown
		label := assistantLabelStyle.Render("✚ SympTrack")
		return label + "\n" + assistantBubbleStyle.Width(width).Render(m.markdownText(msg.Text, width-4))
	}
}

// RenderCard lays out a diagnosis structurally from sanitised fields.
// Disease, tags and severity use the active theme palette.
func RenderCard(p *models.Prediction, width int) string {
	sev := p.Severity()

	lines := []string{
		cardTitleStyle.Render(render.SanitizeLine(p.DiseaseName())),
		severityStyle(sev).Render(sev.Icon() + " " + p.SeverityLine()),
	}

	if p.HasSymptoms {
		tags := make([]string, 0, len(p.SymptomsUsed))
		for _, t := range p.Tags() {
			tags = append(tags, tagStyle.Render(render.SanitizeLine(t)))
		}
		lines = append(lines, cardLabelStyle.Render("Based on: ")+strings.Join(tags, " "))
	}

	return cardStyle.
		BorderForeground(palette.SeverityColor(sev)).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (m Model) markdownText(text string, width int) string {
	opts := m.markdown.WithTheme(m.theme).WithWidth(width)
	rendered, err := render.Markdown(text, opts)
	if err != nil {
		m.logger.Debug("markdown render failed", zap.Error(err))
		return text
	}
	// Trim the padding glamour adds
	return strings.Trim(rendered, "\n")
}

// renderTypingIndicator renders the animated "analyzing" line
func (m Model) renderTypingIndicator() string {
	frame := m.animationFrame

	gradient := palette.Gradient()
	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradient[(frame+i)%len(gradient)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(palette.TextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(palette.Text).Render(" SympTrack is analyzing your symptoms ")
	return fmt.Sprintf("%s%s%s", m.spinner.View(), text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	escDesc := "Quit"
	if m.state.Loading() {
		escDesc = "Cancel"
	}
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"F1-F4", "Quick"},
		{"Tab", "Symptoms"},
		{"Ctrl+T", "Theme"},
		{"Ctrl+Y", "Copy"},
		{"Esc", escDesc},
	}

	items := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}
