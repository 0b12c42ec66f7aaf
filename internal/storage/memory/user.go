package memory

import (
	"context"
	"strings"
	"time"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

func (m *Storage) CreateUser(_ context.Context, user models.User, fullName string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := m.usersByEmail[email]; ok {
		return nil, storage.ErrConflict
	}

	user.Email = email
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	m.users[user.ID] = user
	m.usersByEmail[email] = user.ID
	m.records[user.ID] = newUserRecords(fullName)
	m.log.Debugw("User created", "userID", user.ID)

	return &user, nil
}

func (m *Storage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	user := m.users[id]
	return &user, nil
}
