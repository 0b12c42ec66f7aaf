package memory

import (
	"context"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

func (m *Storage) CreateSession(_ context.Context, session models.RefreshSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createSessionLocked(session)
	m.log.Debugw("Session created", "selector", session.Selector, "userID", session.UserID)

	return nil
}

func (m *Storage) createSessionLocked(session models.RefreshSession) {
	m.nextID++
	session.ID = m.nextID
	if session.Status == "" {
		session.Status = models.SessionStatusActive
	}
	m.sessions[session.Selector] = session
}

func (m *Storage) GetSessionBySelector(_ context.Context, selector string) (*models.RefreshSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[selector]
	if !ok {
		m.log.Debugw("Session not found", "selector", selector)
		return nil, storage.ErrSessionNotFound
	}

	return &session, nil
}

func (m *Storage) RotateSession(_ context.Context, oldSelector string, next models.RefreshSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, ok := m.sessions[oldSelector]
	if !ok || old.Status != models.SessionStatusActive {
		return storage.ErrSessionNotFound
	}

	old.Status = models.SessionStatusUsed
	m.sessions[oldSelector] = old
	m.createSessionLocked(next)

	return nil
}

func (m *Storage) DeleteSession(_ context.Context, selector string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, selector)

	return nil
}

func (m *Storage) DeleteAllUserSessions(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for selector, session := range m.sessions {
		if session.UserID == userID {
			delete(m.sessions, selector)
		}
	}

	return nil
}
