package ui

import (
	"fyne.io/fyne/v2"

	"LocalSketch/internal/sketch"
)

// PrefsStore keeps saved documents in the application's preferences.
type PrefsStore struct {
	prefs fyne.Preferences
}

var _ sketch.Store = (*PrefsStore)(nil)

// NewPrefsStore wraps an application's preferences.
func NewPrefsStore(p fyne.Preferences) *PrefsStore {
	return &PrefsStore{prefs: p}
}

func (s *PrefsStore) Put(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}

// Get reports an empty value as absent; saved documents are never empty.
func (s *PrefsStore) Get(key string) (string, bool, error) {
	v := s.prefs.String(key)
	return v, v != "", nil
}
