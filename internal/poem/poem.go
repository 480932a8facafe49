package poem

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// UntitledLabel is used for saved poems that have no title.
const UntitledLabel = "Bài thơ không tên"

// Options are the user-configured generation parameters.
type Options struct {
	Type          string   `yaml:"type" json:"type"`
	Lines         int      `yaml:"lines" json:"lines"`
	Style         string   `yaml:"style" json:"style"`
	Context       string   `yaml:"context" json:"context"`
	CustomContext string   `yaml:"custom_context" json:"customContext"`
	Emotions      []string `yaml:"emotions" json:"emotions"`
	Audience      string   `yaml:"audience" json:"audience"`
	Inspiration   string   `yaml:"inspiration" json:"inspiration"`
}

// Result is a validated poem returned by the generative service.
type Result struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SavedPoem is an entry in the poem library. Timestamp is the creation
// instant in milliseconds and identifies the entry.
type SavedPoem struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// DefaultOptions returns the options a fresh form starts with.
func DefaultOptions() Options {
	return Options{
		Type:     "Thơ Tự Do",
		Lines:    8,
		Style:    "Lãng mạn",
		Context:  "Tình yêu đôi lứa",
		Emotions: []string{"Vui tươi"},
		Audience: "Người lớn",
	}
}

// EffectiveContext returns the trimmed custom context when set, otherwise the
// trimmed context. The bool reports whether the custom context won.
func (o Options) EffectiveContext() (string, bool) {
	if c := strings.TrimSpace(o.CustomContext); c != "" {
		return c, true
	}
	return strings.TrimSpace(o.Context), false
}

// SelectedEmotions returns the trimmed, non-empty emotions in order.
func (o Options) SelectedEmotions() []string {
	var out []string
	for _, e := range o.Emotions {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// HasEmotion reports whether e is among the selected emotions.
func (o Options) HasEmotion(e string) bool {
	for _, x := range o.Emotions {
		if x == e {
			return true
		}
	}
	return false
}

// ToggleEmotion adds e when absent and removes it otherwise, keeping the
// order of the remaining entries.
func (o *Options) ToggleEmotion(e string) {
	for i, x := range o.Emotions {
		if x == e {
			o.Emotions = append(o.Emotions[:i:i], o.Emotions[i+1:]...)
			return
		}
	}
	o.Emotions = append(o.Emotions, e)
}

// LoadOptionsFile reads a YAML preset. Fields missing from the file keep
// their DefaultOptions values.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return ParseOptions(data)
}

// ParseOptions decodes a YAML preset on top of DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("invalid preset: %w", err)
	}
	return opts, nil
}
