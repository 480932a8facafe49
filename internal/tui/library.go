package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mccwk.com/poet/internal/export"
	"mccwk.com/poet/internal/poem"
	"mccwk.com/poet/internal/store"
)

// LibraryModel is the saved-poems modal: a list on the left and a preview
// of the selected poem on the right.
type LibraryModel struct {
	library       *store.Store
	poems         []poem.SavedPoem
	cursor        int
	loaded        bool
	focus         bool // true when the preview holds focus
	viewport      viewport.Model
	viewportReady bool
	width         int
	height        int
}

func NewLibraryModel(library *store.Store) LibraryModel {
	return LibraryModel{library: library}
}

func (m LibraryModel) Init() tea.Cmd {
	return m.loadPoems()
}

// SetSize lays the modal content out in w x h cells.
func (m *LibraryModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	vw, vh := m.previewSize()
	if !m.viewportReady {
		m.viewport = viewport.New(vw, vh)
		m.viewportReady = true
	} else {
		m.viewport.Width = vw
		m.viewport.Height = vh
	}
	m.updatePreview()
}

func (m LibraryModel) listWidth() int {
	return m.width * 2 / 5
}

func (m LibraryModel) previewSize() (int, int) {
	w := m.width - m.listWidth() - 6
	h := m.height - 6
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

func (m LibraryModel) selected() (poem.SavedPoem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.poems) {
		return poem.SavedPoem{}, false
	}
	return m.poems[m.cursor], true
}

func (m LibraryModel) Update(msg tea.Msg) (LibraryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryLoadedMsg:
		m.poems = msg.poems
		m.loaded = true
		if m.cursor >= len(m.poems) {
			m.cursor = len(m.poems) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.updatePreview()
		return m, nil

	case poemDeletedMsg:
		return m.Update(libraryLoadedMsg{poems: msg.poems})

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return closeLibraryMsg{} }

		case "tab":
			m.focus = !m.focus
			return m, nil

		case "up", "k":
			if m.focus {
				break
			}
			if m.cursor > 0 {
				m.cursor--
				m.updatePreview()
			}
			return m, nil

		case "down", "j":
			if m.focus {
				break
			}
			if m.cursor < len(m.poems)-1 {
				m.cursor++
				m.updatePreview()
			}
			return m, nil

		case "enter":
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return loadPoemMsg{poem: p} }
			}
			return m, nil

		case "c":
			if p, ok := m.selected(); ok {
				return m, copyPoem(p.Title, p.Content)
			}
			return m, nil

		case "d", "delete":
			if p, ok := m.selected(); ok {
				return m, m.deletePoem(p)
			}
			return m, nil
		}

		if m.focus && m.viewportReady {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *LibraryModel) updatePreview() {
	if !m.viewportReady {
		return
	}
	p, ok := m.selected()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(renderMarkdown(poemMarkdown(p.Title, p.Content), m.viewport.Width))
	m.viewport.GotoTop()
}

func (m LibraryModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	header := titleStyle.Render(fmt.Sprintf("Saved poems (%d)", len(m.poems)))

	if !m.loaded {
		return header + "\n\n" + dimStyle.Render("Loading...")
	}
	if len(m.poems) == 0 {
		return header + "\n\n" + dimStyle.Render("No saved poems yet. Press Ctrl+S on a poem to save it.") +
			"\n\n" + dimStyle.Render("Esc: close")
	}

	listW := m.listWidth()
	_, vh := m.previewSize()

	// keep the cursor visible
	visible := vh / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	var list string
	for i := start; i < len(m.poems) && i < start+visible; i++ {
		p := m.poems[i]
		line := truncate(p.Title, listW-6)
		date := time.UnixMilli(p.Timestamp).Format("2006-01-02 15:04")
		if i == m.cursor {
			list += selectedStyle.Render("> "+line) + "\n"
		} else {
			list += "  " + line + "\n"
		}
		list += "  " + dimStyle.Render(date) + "\n"
	}

	listPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(panelBorderColor(!m.focus))).
		Width(listW).
		Height(vh).
		Render(list)

	previewPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(panelBorderColor(m.focus))).
		Render(m.viewport.View())

	footer := dimStyle.Render("↑/↓ select • Tab preview • Enter load • c copy • d delete • Esc close")

	return header + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel) +
		"\n" + footer
}

func (m LibraryModel) loadPoems() tea.Cmd {
	library := m.library
	return func() tea.Msg {
		return libraryLoadedMsg{poems: library.List(context.Background())}
	}
}

func (m LibraryModel) deletePoem(p poem.SavedPoem) tea.Cmd {
	library := m.library
	return func() tea.Msg {
		library.Delete(context.Background(), p.Timestamp)
		return poemDeletedMsg{title: p.Title, poems: library.List(context.Background())}
	}
}

func copyPoem(title, content string) tea.Cmd {
	return func() tea.Msg {
		if err := export.Copy(title, content); err != nil {
			return errMsg{err: fmt.Errorf("copy failed: %w", err)}
		}
		return notifyMsg{level: "success", message: "Copied to clipboard"}
	}
}

type libraryLoadedMsg struct {
	poems []poem.SavedPoem
}

type poemDeletedMsg struct {
	title string
	poems []poem.SavedPoem
}

type loadPoemMsg struct {
	poem poem.SavedPoem
}

type closeLibraryMsg struct{}
