package store

import (
	"path/filepath"
	"sync"

	"vendorhub/internal/domain"
)

const prefsFile = "prefs.json"

// RememberMeKey is the fixed slot the session manager persists the
// remember-me flag under.
const RememberMeKey = "remember_me"

// PrefStore is a durable key-value store backed by a single JSON file.
type PrefStore struct {
	dir string
	mu  sync.Mutex
}

func NewPrefStore(dir string) *PrefStore { return &PrefStore{dir: dir} }

var _ domain.PrefStore = (*PrefStore)(nil)

func (s *PrefStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]string)
	if err := readJSON(s.path(), &m); err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func (s *PrefStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]string)
	if err := readJSON(s.path(), &m); err != nil {
		return err
	}
	m[key] = value
	return writeJSON(s.path(), m, 0o600)
}

func (s *PrefStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]string)
	if err := readJSON(s.path(), &m); err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return writeJSON(s.path(), m, 0o600)
}

func (s *PrefStore) path() string { return filepath.Join(s.dir, prefsFile) }
