package memory

import (
	"context"
	"time"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

func (m *Storage) GetEmergencyToken(_ context.Context, userID string) (*models.EmergencyTokenRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.tokens[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &rec, nil
}

func (m *Storage) CreateEmergencyTokenIfAbsent(_ context.Context, userID, token string) (*models.EmergencyTokenRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return nil, storage.ErrUserNotFound
	}
	if rec, ok := m.tokens[userID]; ok {
		return &rec, nil
	}
	if _, taken := m.tokenOwners[token]; taken {
		return nil, storage.ErrConflict
	}

	rec := models.EmergencyTokenRecord{UserID: userID, Token: token, Active: true, CreatedAt: time.Now().UTC()}
	m.tokens[userID] = rec
	m.tokenOwners[token] = userID
	return &rec, nil
}

func (m *Storage) ReplaceEmergencyToken(_ context.Context, userID, token string) (*models.EmergencyTokenRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return nil, storage.ErrUserNotFound
	}
	if _, taken := m.tokenOwners[token]; taken {
		return nil, storage.ErrConflict
	}
	if prev, ok := m.tokens[userID]; ok {
		delete(m.tokenOwners, prev.Token)
	}

	rec := models.EmergencyTokenRecord{UserID: userID, Token: token, Active: true, CreatedAt: time.Now().UTC()}
	m.tokens[userID] = rec
	m.tokenOwners[token] = userID
	return &rec, nil
}

func (m *Storage) FindUserByEmergencyToken(_ context.Context, token string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.tokenOwners[token]
	if !ok {
		return "", storage.ErrNotFound
	}
	if rec := m.tokens[userID]; !rec.Active {
		return "", storage.ErrNotFound
	}
	return userID, nil
}
