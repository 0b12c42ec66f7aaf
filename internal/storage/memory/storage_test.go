package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	s := NewStorage(zap.NewNop().Sugar())
	u, err := s.CreateUser(context.Background(), models.User{ID: "u1", Email: "Ana@Example.com"}, "Ana")
	require.NoError(t, err)
	return s, u.ID
}

func TestCreateUser_DuplicateEmailIsConflict(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.CreateUser(context.Background(), models.User{ID: "u2", Email: "ana@example.com"}, "")
	require.ErrorIs(t, err, storage.ErrConflict)

	u, err := s.GetUserByEmail(context.Background(), "ANA@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
}

func TestCreateUser_SeedsProfileAndHealth(t *testing.T) {
	s, id := newTestStorage(t)

	p, err := s.GetProfile(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Ana", p.FullName)

	h, err := s.GetHealth(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, models.BloodTypeUnknown, h.BloodType)
}

func TestRotateSession_SingleWinner(t *testing.T) {
	s, id := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.CreateSession(ctx, models.RefreshSession{UserID: id, Selector: "old"}))

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			<-start
			results <- s.RotateSession(ctx, "old", models.RefreshSession{UserID: id, Selector: string(rune('a' + i))})
		}(i)
	}
	close(start)
	wg.Wait()
	close(results)

	success := 0
	for err := range results {
		if err == nil {
			success++
			continue
		}
		require.ErrorIs(t, err, storage.ErrSessionNotFound)
	}
	require.Equal(t, 1, success)

	old, err := s.GetSessionBySelector(ctx, "old")
	require.NoError(t, err)
	require.Equal(t, models.SessionStatusUsed, old.Status)
}

func TestSaveAddress_PrimaryIsExclusive(t *testing.T) {
	s, id := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAddress(ctx, id, models.Address{ID: "a1", Label: models.AddressHome, IsPrimary: true}))
	require.NoError(t, s.SaveAddress(ctx, id, models.Address{ID: "a2", Label: models.AddressWork, IsPrimary: true}))

	list, err := s.ListAddresses(ctx, id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "a1", list[0].ID)
	require.False(t, list[0].IsPrimary)
	require.True(t, list[1].IsPrimary)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	s, id := newTestStorage(t)
	require.ErrorIs(t, s.DeleteAllergy(context.Background(), id, "missing"), storage.ErrNotFound)
}

func TestReplaceEmergencyToken_OldValueStopsResolving(t *testing.T) {
	s, id := newTestStorage(t)
	ctx := context.Background()

	rec, err := s.CreateEmergencyTokenIfAbsent(ctx, id, "t1")
	require.NoError(t, err)
	require.Equal(t, "t1", rec.Token)

	again, err := s.CreateEmergencyTokenIfAbsent(ctx, id, "t-other")
	require.NoError(t, err)
	require.Equal(t, "t1", again.Token)

	_, err = s.ReplaceEmergencyToken(ctx, id, "t2")
	require.NoError(t, err)

	_, err = s.FindUserByEmergencyToken(ctx, "t1")
	require.ErrorIs(t, err, storage.ErrNotFound)

	owner, err := s.FindUserByEmergencyToken(ctx, "t2")
	require.NoError(t, err)
	require.Equal(t, id, owner)
}
