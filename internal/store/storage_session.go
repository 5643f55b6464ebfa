package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/models"
)

// sessionStorage keeps sessions in a map for the lifetime of the process.
// Expired sessions are removed lazily on lookup; there is no sweeper.
type sessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	now    func() time.Time
	logger *logger.Logger
}

// NewSessionStorage constructs an empty in-memory [SessionStorage].
func NewSessionStorage(logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating in-memory session storage")
	return &sessionStorage{
		sessions: make(map[string]models.Session),
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sessionStorage) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

// Get returns the session with id unless it is missing or expired. An
// expired session is deleted on the way out.
func (s *sessionStorage) Get(_ context.Context, id string) (models.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, false
	}

	if session.Expired(s.now()) {
		s.mu.Lock()
		// only drop it if nobody replaced it meanwhile
		if current, ok := s.sessions[id]; ok && current.Expired(s.now()) {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
		return models.Session{}, false
	}

	return session, true
}

func (s *sessionStorage) Delete(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}
