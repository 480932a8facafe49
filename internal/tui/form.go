package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mccwk.com/poet/internal/poem"
)

type formField int

const (
	fieldType formField = iota
	fieldLines
	fieldStyle
	fieldContext
	fieldCustomContext
	fieldEmotions
	fieldAudience
	fieldInspiration
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldType:          "Type",
	fieldLines:         "Lines",
	fieldStyle:         "Style",
	fieldContext:       "Context",
	fieldCustomContext: "Custom context",
	fieldEmotions:      "Emotions",
	fieldAudience:      "Audience",
	fieldInspiration:   "Inspiration",
}

// FormModel edits a poem.Options value.
type FormModel struct {
	opts          poem.Options
	focus         formField
	emotionCursor int
	customContext textinput.Model
	inspiration   textinput.Model
	disabled      bool
}

func NewFormModel(opts poem.Options) FormModel {
	cc := textinput.New()
	cc.Placeholder = "e.g. " + poem.SuggestedTopics[0]
	cc.CharLimit = 200
	cc.Width = 40
	cc.SetValue(opts.CustomContext)

	insp := textinput.New()
	insp.Placeholder = "text, web page URL or YouTube link"
	insp.CharLimit = 2000
	insp.Width = 40
	insp.SetValue(opts.Inspiration)

	return FormModel{
		opts:          opts,
		customContext: cc,
		inspiration:   insp,
	}
}

// Options returns the current form values.
func (m FormModel) Options() poem.Options {
	opts := m.opts
	opts.CustomContext = m.customContext.Value()
	opts.Inspiration = m.inspiration.Value()
	opts.Emotions = append([]string(nil), m.opts.Emotions...)
	return opts
}

// SetDisabled locks the form while a generation is outstanding.
func (m *FormModel) SetDisabled(disabled bool) {
	m.disabled = disabled
	m.syncFocus()
}

func (m *FormModel) syncFocus() {
	m.customContext.Blur()
	m.inspiration.Blur()
	if m.disabled {
		return
	}
	switch m.focus {
	case fieldCustomContext:
		m.customContext.Focus()
	case fieldInspiration:
		m.inspiration.Focus()
	}
}

func (m *FormModel) moveFocus(delta int) {
	n := int(fieldCount)
	m.focus = formField(((int(m.focus)+delta)%n + n) % n)
	m.syncFocus()
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.disabled {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	}

	switch m.focus {
	case fieldType:
		m.opts.Type = m.cycle(keyMsg, poem.Types, m.opts.Type)
	case fieldStyle:
		m.opts.Style = m.cycle(keyMsg, poem.Styles, m.opts.Style)
	case fieldContext:
		m.opts.Context = m.cycle(keyMsg, poem.Contexts, m.opts.Context)
	case fieldAudience:
		m.opts.Audience = m.cycle(keyMsg, poem.Audiences, m.opts.Audience)

	case fieldLines:
		switch keyMsg.String() {
		case "left", "h":
			m.opts.Lines = clamp(m.opts.Lines-poem.LineStep, poem.MinLines, poem.MaxLines)
		case "right", "l":
			m.opts.Lines = clamp(m.opts.Lines+poem.LineStep, poem.MinLines, poem.MaxLines)
		}

	case fieldEmotions:
		switch keyMsg.String() {
		case "left", "h":
			m.emotionCursor = (m.emotionCursor - 1 + len(poem.Emotions)) % len(poem.Emotions)
		case "right", "l":
			m.emotionCursor = (m.emotionCursor + 1) % len(poem.Emotions)
		case " ", "x":
			m.opts.ToggleEmotion(poem.Emotions[m.emotionCursor])
		}

	case fieldCustomContext:
		if keyMsg.String() == "ctrl+t" {
			m.customContext.SetValue(cycleValue(poem.SuggestedTopics, m.customContext.Value(), 1))
			m.customContext.CursorEnd()
			return m, nil
		}
		var cmd tea.Cmd
		m.customContext, cmd = m.customContext.Update(msg)
		return m, cmd

	case fieldInspiration:
		var cmd tea.Cmd
		m.inspiration, cmd = m.inspiration.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m FormModel) cycle(msg tea.KeyMsg, values []string, current string) string {
	switch msg.String() {
	case "left", "h":
		return cycleValue(values, current, -1)
	case "right", "l":
		return cycleValue(values, current, 1)
	}
	return current
}

func (m FormModel) View(width int) string {
	labelStyle := lipgloss.NewStyle().
		Width(16).
		Foreground(lipgloss.Color("243"))

	focusedLabelStyle := labelStyle.
		Foreground(lipgloss.Color("10")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var rows []string
	for f := formField(0); f < fieldCount; f++ {
		focused := f == m.focus && !m.disabled
		label := labelStyle.Render(fieldLabels[f])
		if focused {
			label = focusedLabelStyle.Render("> " + fieldLabels[f])
		}

		var value string
		switch f {
		case fieldType:
			value = selectorView(m.opts.Type, focused)
		case fieldStyle:
			value = selectorView(m.opts.Style, focused)
		case fieldContext:
			value = selectorView(m.opts.Context, focused)
			if strings.TrimSpace(m.customContext.Value()) != "" {
				value = dimStyle.Render(m.opts.Context + " (overridden)")
			}
		case fieldAudience:
			value = selectorView(m.opts.Audience, focused)
		case fieldLines:
			value = sliderView(m.opts.Lines, focused)
		case fieldCustomContext:
			value = m.customContext.View()
		case fieldInspiration:
			value = m.inspiration.View()
			if kind := poem.ClassifyInspiration(m.inspiration.Value()); kind != poem.InspirationNone {
				value += dimStyle.Render("  [" + kind.String() + "]")
			}
		case fieldEmotions:
			value = m.emotionsView(focused, width-18)
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, valueStyle.Render(value)))
	}

	var hint string
	switch m.focus {
	case fieldEmotions:
		hint = "←/→ move • Space toggle"
	case fieldCustomContext:
		hint = "Ctrl+T suggested topic"
	case fieldInspiration:
		hint = "Paste text or a link"
	default:
		hint = "←/→ change"
	}
	rows = append(rows, "", dimStyle.Render("↑/↓ field • "+hint+" • Enter compose"))

	return strings.Join(rows, "\n")
}

func selectorView(value string, focused bool) string {
	if !focused {
		return value
	}
	arrow := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	return arrow.Render("‹ ") + value + arrow.Render(" ›")
}

func sliderView(lines int, focused bool) string {
	steps := (poem.MaxLines-poem.MinLines)/poem.LineStep + 1
	pos := (lines - poem.MinLines) / poem.LineStep

	color := "243"
	if focused {
		color = "10"
	}
	knob := lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	var b strings.Builder
	for i := 0; i < steps; i++ {
		if i == pos {
			b.WriteString(knob.Render("●"))
		} else {
			b.WriteString("─")
		}
	}
	return fmt.Sprintf("%s %d", b.String(), lines)
}

func (m FormModel) emotionsView(focused bool, width int) string {
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true)

	var items []string
	for i, e := range poem.Emotions {
		mark := "[ ]"
		if m.opts.HasEmotion(e) {
			mark = "[x]"
		}
		item := mark + " " + e
		if focused && i == m.emotionCursor {
			item = cursorStyle.Render(item)
		}
		items = append(items, item)
	}

	var lines []string
	var current string
	for _, item := range items {
		if current != "" && lipgloss.Width(current)+2+lipgloss.Width(item) > width {
			lines = append(lines, current)
			current = ""
		}
		if current != "" {
			current += "  "
		}
		current += item
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}
