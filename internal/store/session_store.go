package store

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"sportreg/internal/domain"
)

const sessionsFile = "sessions.json"

// SessionFileStore persists per-server cookie sets to disk.
type SessionFileStore struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir, now: time.Now}
}

// SaveClientSession stores or replaces the cookies for session.ServerURL.
// A session without cookies removes the entry.
func (s *SessionFileStore) SaveClientSession(session domain.ClientSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFile)
	sessions := make(map[string]domain.ClientSession)
	if err := readJSON(path, &sessions); err != nil {
		return err
	}
	key := sessionKey(session.ServerURL)
	if len(session.Cookies) == 0 {
		delete(sessions, key)
	} else {
		session.ServerURL = key
		session.SavedAt = s.now().UTC()
		sessions[key] = session
	}
	return writeJSON(path, sessions, 0o600)
}

// LoadClientSession returns the stored cookies for serverURL.
func (s *SessionFileStore) LoadClientSession(serverURL string) (domain.ClientSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFile)
	sessions := make(map[string]domain.ClientSession)
	if err := readJSON(path, &sessions); err != nil {
		return domain.ClientSession{}, false, err
	}
	session, ok := sessions[sessionKey(serverURL)]
	return session, ok, nil
}

// DeleteClientSession forgets serverURL's cookies.
func (s *SessionFileStore) DeleteClientSession(serverURL string) error {
	return s.SaveClientSession(domain.ClientSession{ServerURL: serverURL})
}

func sessionKey(serverURL string) string {
	return strings.TrimRight(strings.TrimSpace(serverURL), "/")
}

// Compile-time assertion that SessionFileStore implements domain.ClientSessionStore.
var _ domain.ClientSessionStore = (*SessionFileStore)(nil)
