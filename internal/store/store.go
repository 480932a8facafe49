package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"mccwk.com/poet/internal/poem"
)

// Key is the storage key holding the saved-poem list.
const Key = "sang_tac_tho_ai_saved_poems"

// Backend is the key/value persistence the store writes through.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Store is the poem library. It never reports persistence failures to the
// caller: they are logged and the operation degrades to a no-op.
type Store struct {
	mu      sync.Mutex
	backend Backend
	logger  *slog.Logger
	now     func() time.Time
}

func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger, now: time.Now}
}

// List returns saved poems, most recent first. Unreadable data yields an
// empty list.
func (s *Store) List(ctx context.Context) []poem.SavedPoem {
	s.mu.Lock()
	defer s.mu.Unlock()
	poems, err := s.load(ctx)
	if err != nil {
		s.logger.Error("failed to read saved poems", "error", err)
	}
	return poems
}

// Get returns the poem saved at timestamp.
func (s *Store) Get(ctx context.Context, timestamp int64) (poem.SavedPoem, bool) {
	for _, p := range s.List(ctx) {
		if p.Timestamp == timestamp {
			return p, true
		}
	}
	return poem.SavedPoem{}, false
}

// Save prepends a new poem. Blank content and content already in the
// library are ignored. It reports whether a poem was added.
func (s *Store) Save(ctx context.Context, title, content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	poems, err := s.load(ctx)
	if err != nil {
		s.logger.Error("not saving poem: library unreadable", "error", err)
		return false
	}
	var newest int64
	for _, p := range poems {
		if p.Content == content {
			s.logger.Info("poem already saved", "timestamp", p.Timestamp)
			return false
		}
		if p.Timestamp > newest {
			newest = p.Timestamp
		}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = poem.UntitledLabel
	}

	// Timestamps identify poems, so two saves in the same millisecond must
	// still get distinct ones.
	ts := s.now().UnixMilli()
	if ts <= newest {
		ts = newest + 1
	}

	entry := poem.SavedPoem{Title: title, Content: content, Timestamp: ts}
	s.persist(ctx, append([]poem.SavedPoem{entry}, poems...))
	s.logger.Info("poem saved", "title", title, "timestamp", ts)
	return true
}

// Delete removes the poem saved at timestamp. Unknown timestamps are ignored.
func (s *Store) Delete(ctx context.Context, timestamp int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	poems, err := s.load(ctx)
	if err != nil {
		s.logger.Error("not deleting poem: library unreadable", "error", err, "timestamp", timestamp)
		return
	}
	kept := make([]poem.SavedPoem, 0, len(poems))
	for _, p := range poems {
		if p.Timestamp != timestamp {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(poems) {
		return
	}
	s.persist(ctx, kept)
	s.logger.Info("poem deleted", "timestamp", timestamp)
}

// load reads the library. A backend error is returned so callers never
// overwrite data they could not read; unparsable data counts as empty.
func (s *Store) load(ctx context.Context) ([]poem.SavedPoem, error) {
	raw, ok, err := s.backend.Get(ctx, Key)
	if err != nil {
		return []poem.SavedPoem{}, err
	}
	if !ok || raw == "" {
		return []poem.SavedPoem{}, nil
	}

	var poems []poem.SavedPoem
	if err := json.Unmarshal([]byte(raw), &poems); err != nil {
		s.logger.Error("failed to parse saved poems", "error", err)
		return []poem.SavedPoem{}, nil
	}

	out := make([]poem.SavedPoem, 0, len(poems))
	for _, p := range poems {
		if p.Title == "" {
			p.Title = poem.UntitledLabel
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) persist(ctx context.Context, poems []poem.SavedPoem) {
	data, err := json.Marshal(poems)
	if err != nil {
		s.logger.Error("failed to encode saved poems", "error", err)
		return
	}
	if err := s.backend.Put(ctx, Key, string(data)); err != nil {
		s.logger.Error("failed to persist saved poems", "error", err)
	}
}
