package usecase

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/coursecraft/coursecraft/internal/core"
)

// SessionManager tracks the active authoring sessions, one draft aggregate
// per session. Mutations within a session are serialized by a per-session
// lock; distinct sessions never share state.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	factory  func() *AuthoringService
}

type session struct {
	mu  sync.Mutex
	svc *AuthoringService
}

// NewSessionManager builds a manager that spawns sessions from the given
// service factory.
func NewSessionManager(factory func() *AuthoringService) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*session),
		factory:  factory,
	}
}

// Create starts a new authoring session and returns its id.
func (m *SessionManager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &session{svc: m.factory()}
	m.mu.Unlock()
	return id
}

// Do runs fn against the session's service while holding the session lock,
// so one mutation completes fully before the next begins.
func (m *SessionManager) Do(id string, fn func(*AuthoringService) error) error {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: session %s", core.ErrNotFound, id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.svc)
}

// End discards a session and its draft.
func (m *SessionManager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("%w: session %s", core.ErrNotFound, id)
	}
	delete(m.sessions, id)
	return nil
}
