package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
	"go.dalton.dog/bubbleup"

	"mccwk.com/poet/internal/export"
	"mccwk.com/poet/internal/logging"
	"mccwk.com/poet/internal/poem"
	"mccwk.com/poet/internal/services"
	"mccwk.com/poet/internal/store"
)

// logPanelHeight is the total screen rows reserved for the log panel (including
// its border and title) when it is visible.
const logPanelHeight = 12

// Config holds the TUI settings that come from the environment.
type Config struct {
	DownloadDir string
}

// notifyMsg is sent by sub-models to surface a user-visible notification.
type notifyMsg struct {
	level   string // "info" | "success" | "warning" | "error"
	message string
}

// notifyCmd returns a tea.Cmd that fires a notifyMsg.
func notifyCmd(level, message string) tea.Cmd {
	return func() tea.Msg { return notifyMsg{level: level, message: message} }
}

func notifyKey(level string) string {
	switch level {
	case "warning":
		return bubbleup.WarnKey
	case "error":
		return bubbleup.ErrorKey
	default: // "info", "success"
		return bubbleup.InfoKey
	}
}

type Model struct {
	generator *services.Generator
	library   *store.Store
	cfg       Config
	ctx       context.Context
	width     int
	height    int

	form  FormModel
	pane  PoemPaneModel
	focus paneFocus

	// In-flight generation. cancel is non-nil exactly while loading.
	loading bool
	cancel  context.CancelFunc

	lastDownload string

	libraryModel     LibraryModel
	showLibraryModal bool

	// Notifications overlay
	alert bubbleup.AlertModel

	// Log panel
	logSink      *logging.MemorySink
	logViewport  viewport.Model
	logReady     bool
	showLogPanel bool
	logCount     int
}

func NewModel(generator *services.Generator, library *store.Store, logSink *logging.MemorySink, cfg Config) Model {
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = "."
	}

	alert := bubbleup.NewAlertModel(70, false, 4*time.Second).
		WithMinWidth(20).
		WithPosition(bubbleup.TopRightPosition)

	return Model{
		generator: generator,
		library:   library,
		cfg:       cfg,
		ctx:       context.Background(),
		form:      NewFormModel(poem.DefaultOptions()),
		pane:      NewPoemPaneModel(),
		alert:     alert,
		logSink:   logSink,
	}
}

func (m Model) Init() tea.Cmd {
	return m.alert.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always tick the alert model so its dismiss timer works.
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	if m.showLogPanel && m.logSink != nil {
		if n := len(m.logSink.Entries()); n != m.logCount {
			m.logCount = n
			m.refreshLogViewport()
		}
	}

	switch msg := msg.(type) {
	case notifyMsg:
		cmds = append(cmds, m.alert.NewAlertCmd(notifyKey(msg.level), msg.message))
		return m, tea.Batch(cmds...)

	case errMsg:
		cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, msg.err.Error()))
		return m, tea.Batch(cmds...)

	case poemGeneratedMsg:
		m.finishGeneration(msg)
		return m, tea.Batch(cmds...)

	case poemSavedMsg:
		if msg.saved {
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Saved to library"))
		} else {
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.WarnKey, "Already in library"))
		}
		return m, tea.Batch(cmds...)

	case poemDownloadedMsg:
		m.lastDownload = msg.path
		cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Saved "+msg.path+" (Ctrl+O to open)"))
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, tea.Batch(cmds...)
	}

	if m.showLibraryModal {
		var cmd tea.Cmd
		m, cmd = m.updateLibraryModal(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		cmd, handled := m.handleKey(keyMsg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	if _, ok := msg.(tea.KeyMsg); ok && m.focus == paneFocusForm {
		m.form, cmd = m.form.Update(msg)
	} else {
		m.pane, cmd = m.pane.Update(msg)
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes the global shortcuts. It reports whether the key was
// consumed.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return tea.Quit, true

	case "ctrl+l":
		m.showLogPanel = !m.showLogPanel
		m.resize()
		if m.showLogPanel {
			m.refreshLogViewport()
		}
		return nil, true

	case "esc":
		if m.loading {
			m.cancel()
			return nil, true
		}
		if m.focus == paneFocusTitle {
			m.focus = paneFocusForm
			m.pane.BlurTitle()
			return nil, true
		}
		return nil, false

	case "enter", "ctrl+g":
		if m.focus == paneFocusTitle {
			m.focus = paneFocusForm
			m.pane.BlurTitle()
			return nil, true
		}
		return m.startGeneration(), true

	case "ctrl+e":
		if m.loading || !m.pane.HasPoem() {
			return nil, true
		}
		m.focus = paneFocusTitle
		return m.pane.FocusTitle(), true

	case "ctrl+r":
		if m.loading {
			return notifyCmd("warning", "Cancel the current poem first (Esc)"), true
		}
		m.form = NewFormModel(poem.DefaultOptions())
		m.pane.Clear()
		m.pane.BlurTitle()
		m.focus = paneFocusForm
		m.lastDownload = ""
		return nil, true

	case "ctrl+s":
		if !m.pane.HasPoem() {
			return nil, true
		}
		return m.savePoem(m.pane.Title(), m.pane.Content()), true

	case "ctrl+y":
		if !m.pane.HasPoem() {
			return nil, true
		}
		return copyPoem(m.pane.Title(), m.pane.Content()), true

	case "ctrl+d":
		if !m.pane.HasPoem() {
			return nil, true
		}
		return m.downloadPoem(m.pane.Title(), m.pane.Content()), true

	case "ctrl+o":
		if m.lastDownload == "" {
			return notifyCmd("warning", "Nothing downloaded yet (Ctrl+D)"), true
		}
		return openFile(m.lastDownload), true

	case "ctrl+b":
		m.showLibraryModal = true
		m.libraryModel = NewLibraryModel(m.library)
		m.resize()
		return m.libraryModel.Init(), true

	case "pgup", "pgdown":
		if m.showLogPanel && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return cmd, true
		}
		var cmd tea.Cmd
		m.pane, cmd = m.pane.Update(msg)
		return cmd, true
	}

	return nil, false
}

// startGeneration issues one request for the current form values. It is a
// no-op while a generation is outstanding.
func (m *Model) startGeneration() tea.Cmd {
	if m.loading {
		return nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.loading = true
	m.form.SetDisabled(true)

	opts := m.form.Options()
	generator := m.generator
	return tea.Batch(
		m.pane.StartLoading(),
		func() tea.Msg {
			result, err := generator.Generate(ctx, opts)
			return poemGeneratedMsg{result: result, err: err}
		},
	)
}

func (m *Model) finishGeneration(msg poemGeneratedMsg) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = false
	m.form.SetDisabled(false)
	m.pane.StopLoading()

	if msg.err != nil {
		m.pane.SetStatus(services.UserMessage(msg.err), !errors.Is(msg.err, services.ErrCancelled))
		return
	}
	m.pane.SetPoem(msg.result.Title, msg.result.Content)
	m.lastDownload = ""
}

func (m Model) updateLibraryModal(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case closeLibraryMsg:
		m.showLibraryModal = false
		return m, nil

	case loadPoemMsg:
		if m.loading {
			return m, notifyCmd("warning", "Cancel the current poem first (Esc)")
		}
		m.showLibraryModal = false
		m.pane.SetPoem(msg.poem.Title, msg.poem.Content)
		m.lastDownload = ""
		return m, nil

	case poemDeletedMsg:
		var cmd tea.Cmd
		m.libraryModel, cmd = m.libraryModel.Update(msg)
		return m, tea.Batch(cmd, notifyCmd("info", fmt.Sprintf("Deleted %q", msg.title)))
	}

	var cmd tea.Cmd
	m.libraryModel, cmd = m.libraryModel.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	if m.width == 0 {
		return
	}

	// Initialise / resize the log viewport.
	logInnerH := logPanelHeight - 4 // subtract border rows + title
	if !m.logReady {
		m.logViewport = viewport.New(m.width-4, logInnerH)
		m.logReady = true
	} else {
		m.logViewport.Width = m.width - 4
		m.logViewport.Height = logInnerH
	}

	bodyH := m.bodyHeight()
	m.pane.SetSize(m.width-m.formWidth()-1, bodyH)

	modalW, modalH := m.modalSize()
	m.libraryModel.SetSize(modalW-4, modalH-4)
}

func (m Model) formWidth() int {
	w := m.width / 2
	if w < 50 {
		w = 50
	}
	return w
}

// bodyHeight is the height left for the form and poem pane.
func (m Model) bodyHeight() int {
	h := m.height - 4 // header + footer
	if m.showLogPanel {
		h -= logPanelHeight
	}
	if h < 8 {
		h = 8
	}
	return h
}

func (m Model) modalSize() (int, int) {
	w := m.width - 10
	if w > 120 {
		w = 120
	}
	if w < 60 {
		w = 60
	}
	h := m.height - 6
	if h < 16 {
		h = 16
	}
	return w, h
}

// refreshLogViewport updates the log viewport content from the in-memory sink
// and scrolls to the most-recent entry.
func (m *Model) refreshLogViewport() {
	if !m.logReady || m.logSink == nil {
		return
	}
	content := m.logSink.Render(m.logViewport.Width)
	m.logViewport.SetContent(content)
	m.logViewport.GotoBottom()
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	if m.showLibraryModal {
		content = m.renderLibraryModal()
	} else {
		content = m.renderHeader() + "\n" + m.renderBody() + "\n" + m.renderFooter()
		if m.showLogPanel {
			content += "\n" + m.renderLogPanel()
		}
	}

	return m.alert.Render(content)
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		Padding(0, 2)

	modelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	title := titleStyle.Render("poet · Sáng Tác Thơ AI") + modelStyle.Render(m.generator.ModelName())

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color("237")).
		Width(m.width).
		Render(lipgloss.Border{}.Top)

	return title + "\n" + separator
}

func (m Model) renderBody() string {
	bodyH := m.bodyHeight()

	formPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(panelBorderColor(m.focus == paneFocusForm && !m.loading))).
		Padding(0, 1).
		Width(m.formWidth() - 2).
		Height(bodyH - 2).
		MaxHeight(bodyH).
		Render(m.form.View(m.formWidth() - 4))

	pane := lipgloss.NewStyle().
		MaxHeight(bodyH).
		Render(m.pane.View(m.focus == paneFocusTitle))

	return lipgloss.JoinHorizontal(lipgloss.Top, formPanel, " ", pane)
}

func (m Model) renderFooter() string {
	footerText := "Enter: compose • Ctrl+S: save • Ctrl+Y: copy • Ctrl+D: download • Ctrl+E: edit title • Ctrl+B: library • Ctrl+R: reset • Ctrl+L: logs • Ctrl+C: quit"
	if m.loading {
		footerText = "Esc: cancel • Ctrl+L: logs • Ctrl+C: quit"
	} else if m.focus == paneFocusTitle {
		footerText = "Enter/Esc: done editing title"
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Width(m.width).
		Render(footerText)
}

func (m Model) renderLogPanel() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6"))

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	title := titleStyle.Render("Logs") +
		hintStyle.Render("  PgUp/PgDn: scroll • Ctrl+L: close")

	var body string
	if m.logReady && m.logSink != nil {
		body = title + "\n" + m.logViewport.View()
	} else {
		body = title + "\n" + hintStyle.Render("(no log sink configured)")
	}

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("237")).
		Padding(0, 1).
		Width(m.width - 4)

	return panelStyle.Render(body)
}

func (m Model) renderLibraryModal() string {
	modalWidth, modalHeight := m.modalSize()

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("10")).
		Padding(1).
		Width(modalWidth).
		MaxHeight(modalHeight)

	modal := modalStyle.Render(m.libraryModel.View())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func (m Model) savePoem(title, content string) tea.Cmd {
	library := m.library
	return func() tea.Msg {
		return poemSavedMsg{saved: library.Save(context.Background(), title, content)}
	}
}

func (m Model) downloadPoem(title, content string) tea.Cmd {
	dir := m.cfg.DownloadDir
	return func() tea.Msg {
		path, err := export.WriteFile(dir, title, content, time.Now())
		if err != nil {
			return errMsg{err: fmt.Errorf("download failed: %w", err)}
		}
		return poemDownloadedMsg{path: path}
	}
}

func openFile(path string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenFile(path); err != nil {
			return errMsg{err: fmt.Errorf("failed to open %s: %w", path, err)}
		}
		return nil
	}
}

// Messages

type poemGeneratedMsg struct {
	result poem.Result
	err    error
}

type poemSavedMsg struct {
	saved bool
}

type poemDownloadedMsg struct {
	path string
}

type errMsg struct {
	err error
}
