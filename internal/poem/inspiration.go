package poem

import (
	"net/url"
	"regexp"
	"strings"
)

// InspirationKind classifies the free-text inspiration field.
type InspirationKind int

const (
	InspirationNone InspirationKind = iota
	InspirationText
	InspirationURL
	InspirationVideo
)

func (k InspirationKind) String() string {
	switch k {
	case InspirationText:
		return "text"
	case InspirationURL:
		return "url"
	case InspirationVideo:
		return "video"
	default:
		return "none"
	}
}

var videoHostPattern = regexp.MustCompile(`(?:youtube\.com|youtu\.be)`)

// ClassifyInspiration decides how the inspiration field steers the prompt.
// Classification is syntactic; nothing is fetched.
func ClassifyInspiration(s string) InspirationKind {
	s = strings.TrimSpace(s)
	if s == "" {
		return InspirationNone
	}
	u, ok := parseAbsoluteURL(s)
	if !ok {
		return InspirationText
	}
	if videoHostPattern.MatchString(strings.ToLower(u.Host)) {
		return InspirationVideo
	}
	return InspirationURL
}

func parseAbsoluteURL(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if u.Host == "" && u.Opaque == "" && u.Path == "" {
		return nil, false
	}
	return u, true
}
