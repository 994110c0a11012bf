package memory

import (
	"context"
	"sync"

	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/pkg/e"
)

// SessionRepo держит сессии витрины в памяти процесса.
// Используется по умолчанию, когда внешнее хранилище не настроено.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*domain.Session),
	}
}

func (s *SessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, e.ErrSessionNotFound
	}

	return session, nil
}

func (s *SessionRepo) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session

	return nil
}

func (s *SessionRepo) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)

	return nil
}
