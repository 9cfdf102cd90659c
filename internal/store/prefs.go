package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Theme is the persisted display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// prefs is the on-disk shape. The theme flag is the only thing this system
// persists.
type prefs struct {
	Theme Theme `json:"theme"`
}

// PrefsStore persists user preferences as a small JSON file. Reads happen
// once at startup; writes happen on every toggle.
type PrefsStore struct {
	mu   sync.Mutex
	path string
}

// NewPrefsStore creates a store backed by the file at path. The file is
// created lazily on first save.
func NewPrefsStore(path string) *PrefsStore {
	return &PrefsStore{path: path}
}

// LoadTheme returns the persisted theme, or fallback when the file is
// missing, unreadable, or holds an unknown value.
func (s *PrefsStore) LoadTheme(fallback Theme) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fallback
	}

	var p prefs
	if err := json.Unmarshal(data, &p); err != nil || !p.Theme.Valid() {
		return fallback
	}
	return p.Theme
}

// SaveTheme writes the theme to disk, rejecting values outside light/dark.
func (s *PrefsStore) SaveTheme(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q", t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(prefs{Theme: t})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
