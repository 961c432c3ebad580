package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"radixconv/internal/domain"
)

// PrefsFileName is the preferences file inside the home directory.
const PrefsFileName = "config.yaml"

// PrefsFileStore keeps domain.Preferences in <home>/config.yaml.
type PrefsFileStore struct {
	mu   sync.Mutex
	path string
}

// NewPrefsFileStore returns a store rooted at home.
func NewPrefsFileStore(home string) *PrefsFileStore {
	return &PrefsFileStore{path: filepath.Join(home, PrefsFileName)}
}

// Path returns the file the store reads and writes.
func (s *PrefsFileStore) Path() string { return s.path }

// Load returns the stored preferences. A missing file yields the defaults and
// unset fields are filled from them.
func (s *PrefsFileStore) Load() (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.Preferences
	found, err := readYAML(s.path, &p)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	if !found {
		return domain.DefaultPreferences(), nil
	}
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return domain.Preferences{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return p, nil
}

// Save validates p and writes it with mode 0600.
func (s *PrefsFileStore) Save(p domain.Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeYAML(s.path, p, 0o600)
}

var _ domain.PreferencesStore = (*PrefsFileStore)(nil)
