// Package tui provides the terminal chat interface for symptrack.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/render"
)

// Active palette (updated from theme)
var palette render.TUITheme

// Style variables (rebuilt when theme changes)
var (
	headerStyle    lipgloss.Style
	titleStyle     lipgloss.Style
	hintStyle      lipgloss.Style
	themeIconStyle lipgloss.Style

	// Messages area panel
	messagesAreaStyle lipgloss.Style

	userBubbleStyle      lipgloss.Style
	userLabelStyle       lipgloss.Style
	assistantBubbleStyle lipgloss.Style
	assistantLabelStyle  lipgloss.Style
	errorBubbleStyle     lipgloss.Style

	// Prediction card
	cardStyle      lipgloss.Style
	cardTitleStyle lipgloss.Style
	cardLabelStyle lipgloss.Style
	tagStyle       lipgloss.Style

	// Input area panel
	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	// Typing indicator
	loadingStyle lipgloss.Style

	// Sidebar
	sidebarStyle         lipgloss.Style
	sidebarFocusedStyle  lipgloss.Style
	sidebarTitleStyle    lipgloss.Style
	sidebarItemStyle     lipgloss.Style
	sidebarSelectedStyle lipgloss.Style
	sidebarCursorStyle   lipgloss.Style

	// Status bar styles
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
	noticeStyle     lipgloss.Style
)

func init() {
	UpdateTheme(models.DefaultTheme)
}

// UpdateTheme switches the palette and rebuilds every style
func UpdateTheme(pref models.ThemePreference) {
	palette = render.ThemeFor(pref)
	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(palette.Primary).
		Bold(true)

	hintStyle = lipgloss.NewStyle().
		Foreground(palette.TextMute).
		Italic(true)

	themeIconStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Bold(true)

	messagesAreaStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		Padding(0, 1)

	userBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Secondary).
		Foreground(palette.Text).
		Padding(0, 1).
		MarginLeft(4)

	userLabelStyle = lipgloss.NewStyle().
		Foreground(palette.Secondary).
		Bold(true).
		MarginLeft(4)

	assistantBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Primary).
		Foreground(palette.Text).
		Padding(0, 1).
		MarginRight(4)

	assistantLabelStyle = lipgloss.NewStyle().
		Foreground(palette.Primary).
		Bold(true)

	errorBubbleStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Error).
		Foreground(palette.Error).
		Padding(0, 1).
		MarginRight(4)

	cardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		PaddingLeft(1).
		MarginRight(4)

	cardTitleStyle = lipgloss.NewStyle().
		Foreground(palette.Text).
		Bold(true)

	cardLabelStyle = lipgloss.NewStyle().
		Foreground(palette.TextDim)

	tagStyle = lipgloss.NewStyle().
		Foreground(palette.Background).
		Background(palette.Accent).
		Padding(0, 1)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(palette.Primary).
		Bold(true)

	loadingStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Bold(true)

	sidebarStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		Padding(0, 1)

	sidebarFocusedStyle = sidebarStyle.
		BorderForeground(palette.Primary)

	sidebarTitleStyle = lipgloss.NewStyle().
		Foreground(palette.Secondary).
		Bold(true)

	sidebarItemStyle = lipgloss.NewStyle().
		Foreground(palette.Text).
		PaddingLeft(2)

	sidebarSelectedStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Bold(true)

	sidebarCursorStyle = lipgloss.NewStyle().
		Foreground(palette.Accent)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(palette.TextMute)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(palette.TextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(palette.TextMute)

	noticeStyle = lipgloss.NewStyle().
		Foreground(palette.TextDim).
		Italic(true)
}

// badgeStyle colors the health badge for a status
func badgeStyle(h models.HealthStatus) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(palette.Background).
		Background(palette.HealthColor(h)).
		Bold(true).
		Padding(0, 1)
}

// severityStyle colors the severity line of a card
func severityStyle(s models.Severity) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(palette.SeverityColor(s)).
		Bold(true)
}
