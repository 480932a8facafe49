package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// paneFocus selects which pane receives keys on the composer screen.
type paneFocus int

const (
	paneFocusForm paneFocus = iota
	paneFocusTitle
)

// panelBorderColor returns the border colour for a panel depending on whether
// it currently holds focus (active=green, inactive=dim).
func panelBorderColor(focused bool) string {
	if focused {
		return "10"
	}
	return "8"
}

// cycleValue returns the entry delta steps away from current in values,
// wrapping at both ends. A current value outside the list starts from the
// first entry.
func cycleValue(values []string, current string, delta int) string {
	if len(values) == 0 {
		return current
	}
	idx := -1
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return values[0]
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// poemMarkdown turns a poem into markdown that keeps its line breaks: glamour
// would otherwise fold verse lines into paragraphs.
func poemMarkdown(title, content string) string {
	var doc strings.Builder
	if title != "" {
		doc.WriteString("# " + title + "\n\n")
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		doc.WriteString(strings.TrimRight(line, " \t"))
		if i < len(lines)-1 && line != "" && lines[i+1] != "" {
			doc.WriteString("  ")
		}
		doc.WriteString("\n")
	}
	return doc.String()
}

// renderMarkdown renders md for a viewport of the given width, falling back to
// plain wrapped text when glamour cannot.
func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapText(md, width)
	}
	out, err := r.Render(md)
	if err != nil {
		return wrapText(md, width)
	}
	return strings.TrimRight(out, "\n")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// wrapText wraps text to the specified width, breaking on word boundaries
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		if len([]rune(line)) <= width {
			result.WriteString(line)
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len([]rune(currentLine))+1+len([]rune(word)) > width {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			} else {
				currentLine += " " + word
			}
		}
		result.WriteString(currentLine)
	}

	return result.String()
}
