package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PoemPaneModel shows the current poem with an editable title.
type PoemPaneModel struct {
	title    textinput.Model
	content  string
	spinner  spinner.Model
	loading  bool
	status   string
	failed   bool
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func NewPoemPaneModel() PoemPaneModel {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 200
	ti.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return PoemPaneModel{
		title:   ti,
		spinner: sp,
	}
}

func (m PoemPaneModel) Title() string   { return strings.TrimSpace(m.title.Value()) }
func (m PoemPaneModel) Content() string { return m.content }
func (m PoemPaneModel) HasPoem() bool   { return strings.TrimSpace(m.content) != "" }

// SetSize lays the pane out in w x h cells, borders included.
func (m *PoemPaneModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	innerW := w - 4
	innerH := h - 6
	if innerH < 3 {
		innerH = 3
	}
	if !m.ready {
		m.viewport = viewport.New(innerW, innerH)
		m.ready = true
	} else {
		m.viewport.Width = innerW
		m.viewport.Height = innerH
	}
	m.title.Width = innerW - 8
	m.refresh()
}

func (m *PoemPaneModel) SetPoem(title, content string) {
	m.title.SetValue(title)
	m.content = content
	m.status = ""
	m.failed = false
	m.refresh()
	m.viewport.GotoTop()
}

func (m *PoemPaneModel) Clear() {
	m.SetPoem("", "")
}

// StartLoading clears the pane and starts the spinner.
func (m *PoemPaneModel) StartLoading() tea.Cmd {
	m.Clear()
	m.loading = true
	return m.spinner.Tick
}

func (m *PoemPaneModel) StopLoading() {
	m.loading = false
}

// SetStatus replaces the poem area with a message. failed selects the error
// style over the informational one.
func (m *PoemPaneModel) SetStatus(msg string, failed bool) {
	m.status = msg
	m.failed = failed
}

func (m *PoemPaneModel) FocusTitle() tea.Cmd {
	return m.title.Focus()
}

func (m *PoemPaneModel) BlurTitle() {
	m.title.Blur()
}

func (m *PoemPaneModel) refresh() {
	if !m.ready || m.content == "" {
		return
	}
	// The title is shown by the input above the viewport.
	m.viewport.SetContent(renderMarkdown(poemMarkdown("", m.content), m.viewport.Width))
}

func (m PoemPaneModel) Update(msg tea.Msg) (PoemPaneModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.title.Focused() {
			var cmd tea.Cmd
			m.title, cmd = m.title.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m PoemPaneModel) View(focused bool) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var title string
	if m.title.Focused() {
		title = labelStyle.Render("Title: ") + m.title.View()
	} else if t := m.Title(); t != "" {
		title = labelStyle.Render("Title: ") + titleStyle.Render(t)
	} else {
		title = labelStyle.Render("Title: ") + dimStyle.Render("(none)")
	}

	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " Composing..."
	case m.status != "" && m.failed:
		body = errorStyle.Render(m.status)
	case m.status != "":
		body = infoStyle.Render(m.status)
	case m.content == "":
		body = dimStyle.Render("Your poem will appear here.")
	default:
		body = m.viewport.View()
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(panelBorderColor(focused))).
		Padding(0, 1).
		Width(m.width - 2).
		Height(m.height - 2)

	return panel.Render(title + "\n\n" + body)
}
