package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/symptrack/internal/models"
	"github.com/diogo/symptrack/internal/render"
)

const sidebarWidth = 32

// sidebar is the searchable list of known symptoms
type sidebar struct {
	search  textinput.Model
	catalog models.Catalog
	visible models.Catalog
	cursor  int

	open    bool
	focused bool
	loading bool
	failed  bool
}

func newSidebar() sidebar {
	ti := textinput.New()
	ti.Placeholder = "Search symptoms..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 64
	ti.Width = sidebarWidth - 8

	return sidebar{
		search:  ti,
		open:    true,
		loading: true,
	}
}

// setCatalog replaces the list and reapplies the current filter
func (s *sidebar) setCatalog(c models.Catalog) {
	s.catalog = c
	s.loading = false
	s.failed = false
	s.refilter()
}

func (s *sidebar) setFailed() {
	s.loading = false
	s.failed = true
	s.catalog = nil
	s.refilter()
}

func (s *sidebar) refilter() {
	s.visible = s.catalog.Filter(strings.TrimSpace(s.search.Value()))
	s.cursor = 0
}

func (s *sidebar) focus() tea.Cmd {
	s.open = true
	s.focused = true
	return s.search.Focus()
}

func (s *sidebar) blur() {
	s.focused = false
	s.search.Blur()
}

func (s *sidebar) toggle() tea.Cmd {
	if s.open {
		s.open = false
		s.blur()
		return nil
	}
	return s.focus()
}

func (s *sidebar) moveUp() {
	if len(s.visible) == 0 {
		return
	}
	s.cursor--
	if s.cursor < 0 {
		s.cursor = len(s.visible) - 1
	}
}

func (s *sidebar) moveDown() {
	if len(s.visible) == 0 {
		return
	}
	s.cursor++
	if s.cursor >= len(s.visible) {
		s.cursor = 0
	}
}

// selected returns the symptom under the cursor
func (s sidebar) selected() (models.Symptom, bool) {
	if s.cursor < 0 || s.cursor >= len(s.visible) {
		return "", false
	}
	return s.visible[s.cursor], true
}

// update feeds a key to the search box and refilters when the text changed
func (s *sidebar) update(msg tea.KeyMsg) tea.Cmd {
	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if s.search.Value() != before {
		s.refilter()
	}
	return cmd
}

func (s sidebar) view(height int) string {
	var b strings.Builder

	b.WriteString(sidebarTitleStyle.Render("Symptoms"))
	if !s.loading && !s.failed {
		b.WriteString(hintStyle.Render(fmt.Sprintf(" %d/%d", len(s.visible), len(s.catalog))))
	}
	b.WriteString("\n")
	b.WriteString(s.search.View())
	b.WriteString("\n\n")

	rows := height - 5
	if rows < 1 {
		rows = 1
	}

	switch {
	case s.loading:
		b.WriteString(loadingStyle.Render("Loading..."))
	case s.failed:
		b.WriteString(hintStyle.Render("Symptom list unavailable.\nCtrl+R to retry."))
	case len(s.visible) == 0:
		b.WriteString(hintStyle.Render("No symptoms match"))
	default:
		start := 0
		if s.cursor >= rows {
			start = s.cursor - rows + 1
		}
		end := start + rows
		if end > len(s.visible) {
			end = len(s.visible)
		}
		for i := start; i < end; i++ {
			name := render.SanitizeLine(s.visible[i].DisplayName())
			if i == s.cursor && s.focused {
				b.WriteString(sidebarCursorStyle.Render("▸ ") + sidebarSelectedStyle.Render(name))
			} else {
				b.WriteString(sidebarItemStyle.Render(name))
			}
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	style := sidebarStyle
	if s.focused {
		style = sidebarFocusedStyle
	}
	return style.Width(sidebarWidth - 2).Height(height).Render(b.String())
}
