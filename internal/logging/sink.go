package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const DefaultMaxEntries = 500

// Entry is a single captured log record, attributes already rendered.
type Entry struct {
	Timestamp time.Time
	Level     slog.Level
	Message   string
}

type ring struct {
	mu      sync.Mutex
	entries []Entry
	maxSize int
}

func (r *ring) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	if len(r.entries) > r.maxSize {
		r.entries = r.entries[len(r.entries)-r.maxSize:]
	}
}

// MemorySink is an slog.Handler that keeps recent records in memory for the
// TUI log panel. Handlers derived with WithAttrs/WithGroup share the buffer.
// It is safe for concurrent use.
type MemorySink struct {
	buf    *ring
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewMemorySink retains at most maxSize entries at or above level.
func NewMemorySink(maxSize int, level slog.Leveler) *MemorySink {
	if maxSize <= 0 {
		maxSize = DefaultMaxEntries
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &MemorySink{buf: &ring{maxSize: maxSize}, level: level}
}

func (s *MemorySink) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

func (s *MemorySink) Handle(_ context.Context, r slog.Record) error {
	parts := append([]string{r.Message}, s.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, s.renderAttr(a))
		return true
	})

	s.buf.add(Entry{
		Timestamp: r.Time,
		Level:     r.Level,
		Message:   strings.Join(parts, " "),
	})
	return nil
}

func (s *MemorySink) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *s
	next.attrs = append([]string(nil), s.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, s.renderAttr(a))
	}
	return &next
}

func (s *MemorySink) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	next := *s
	next.prefix = s.prefix + name + "."
	return &next
}

func (s *MemorySink) renderAttr(a slog.Attr) string {
	return s.prefix + a.Key + "=" + fmt.Sprintf("%v", a.Value.Resolve().Any())
}

// Entries returns a snapshot of the buffered entries, oldest first.
func (s *MemorySink) Entries() []Entry {
	s.buf.mu.Lock()
	defer s.buf.mu.Unlock()
	result := make([]Entry, len(s.buf.entries))
	copy(result, s.buf.entries)
	return result
}

// Render formats entries one per line for a viewport of the given width.
// Lines longer than width-2 are truncated.
func (s *MemorySink) Render(width int) string {
	entries := s.Entries()
	if len(entries) == 0 {
		return "(no log entries yet)"
	}
	var b strings.Builder
	for _, e := range entries {
		line := fmt.Sprintf("%s [%s] %s",
			e.Timestamp.Format("15:04:05"),
			levelLabel(e.Level),
			e.Message,
		)
		if width > 10 {
			if runes := []rune(line); len(runes) > width-2 {
				line = string(runes[:width-5]) + "..."
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func levelLabel(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DBG"
	case l < slog.LevelWarn:
		return "INF"
	case l < slog.LevelError:
		return "WRN"
	default:
		return "ERR"
	}
}
