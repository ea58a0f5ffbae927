package store

import (
	"path/filepath"
	"sync"

	"vendorhub/internal/domain"
)

const draftFile = "registration_draft.json"

// DraftStore persists the in-progress registration form between runs.
// The draft is cleared on confirmed submission success.
type DraftStore struct {
	dir string
	mu  sync.Mutex
}

func NewDraftStore(dir string) *DraftStore { return &DraftStore{dir: dir} }

var _ domain.DraftStore = (*DraftStore)(nil)

func (s *DraftStore) Save(form *domain.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.path(), form, 0o600)
}

// Load returns the saved draft, or (nil, false, nil) when none exists.
func (s *DraftStore) Load() (*domain.Form, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := domain.NewForm()
	if err := readJSON(s.path(), form); err != nil {
		return nil, false, err
	}
	if form.Len() == 0 {
		return nil, false, nil
	}
	return form, true, nil
}

func (s *DraftStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.path())
}

func (s *DraftStore) path() string { return filepath.Join(s.dir, draftFile) }
