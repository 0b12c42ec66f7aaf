package service

import (
	"cmp"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
	"github.com/rryowa/medcard/internal/util"
)

const tokenCollisionRetries = 3

type EmergencyService struct {
	storage  storage.Storage
	notifier RegenerationNotifier
	log      *zap.SugaredLogger
}

func NewEmergencyService(storage storage.Storage, notifier RegenerationNotifier, log *zap.SugaredLogger) *EmergencyService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &EmergencyService{storage: storage, notifier: notifier, log: log}
}

// NewEmergencyToken returns 32 random bytes as unpadded base64url.
func NewEmergencyToken() (string, error) {
	raw := make([]byte, util.EmergencyTokenLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func wellFormedToken(token string) bool {
	if len(token) != base64.RawURLEncoding.EncodedLen(util.EmergencyTokenLength) {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	return err == nil && len(raw) == util.EmergencyTokenLength
}

// GetToken returns the owner's token, creating one on first use.
func (s *EmergencyService) GetToken(ctx context.Context, userID string) (*models.EmergencyToken, error) {
	rec, err := s.storage.GetEmergencyToken(ctx, userID)
	if err == nil {
		return &models.EmergencyToken{Token: rec.Token, Active: rec.Active}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("get emergency token: %w", err)
	}

	rec, err = s.withFreshToken(func(token string) (*models.EmergencyTokenRecord, error) {
		return s.storage.CreateEmergencyTokenIfAbsent(ctx, userID, token)
	})
	if err != nil {
		return nil, fmt.Errorf("create emergency token: %w", err)
	}
	s.log.Infow("Emergency token issued", "userID", userID)
	return &models.EmergencyToken{Token: rec.Token, Active: rec.Active}, nil
}

// RegenerateToken replaces the owner's token. The previous value stops
// resolving before this returns.
func (s *EmergencyService) RegenerateToken(ctx context.Context, userID string) (*models.EmergencyToken, error) {
	rec, err := s.withFreshToken(func(token string) (*models.EmergencyTokenRecord, error) {
		return s.storage.ReplaceEmergencyToken(ctx, userID, token)
	})
	if err != nil {
		return nil, fmt.Errorf("replace emergency token: %w", err)
	}

	s.log.Infow("Emergency token regenerated", "userID", userID)
	s.notifier.NotifyTokenRegenerated(ctx, userID)

	return &models.EmergencyToken{Token: rec.Token, Active: rec.Active}, nil
}

func (s *EmergencyService) withFreshToken(
	store func(token string) (*models.EmergencyTokenRecord, error),
) (*models.EmergencyTokenRecord, error) {
	var lastErr error
	for range tokenCollisionRetries {
		token, err := NewEmergencyToken()
		if err != nil {
			return nil, err
		}
		rec, err := store(token)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// Resolve builds the public disclosure for token. Every failure to match a
// live token is reported as ErrEmergencyTokenNotFound.
func (s *EmergencyService) Resolve(ctx context.Context, token string) (*models.EmergencyDisclosure, error) {
	if !wellFormedToken(token) {
		return nil, ErrEmergencyTokenNotFound
	}

	userID, err := s.storage.FindUserByEmergencyToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEmergencyTokenNotFound
		}
		return nil, fmt.Errorf("find emergency token: %w", err)
	}

	var (
		profile     *models.Profile
		health      *models.Health
		allergies   []models.Allergy
		medications []models.Medication
		contacts    []models.EmergencyContact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = s.storage.GetProfile(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		health, err = s.storage.GetHealth(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		allergies, err = s.storage.ListAllergies(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		medications, err = s.storage.ListMedications(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		contacts, err = s.storage.ListEmergencyContacts(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrEmergencyTokenNotFound
		}
		return nil, fmt.Errorf("load disclosure: %w", err)
	}

	return project(profile, health, allergies, medications, contacts), nil
}

// project copies only whitelisted fields. Anything not named here never
// reaches the public view.
func project(
	profile *models.Profile,
	health *models.Health,
	allergies []models.Allergy,
	medications []models.Medication,
	contacts []models.EmergencyContact,
) *models.EmergencyDisclosure {
	d := &models.EmergencyDisclosure{
		Name:              profile.FullName,
		BloodType:         health.BloodType,
		Allergies:         make([]models.DisclosedAllergy, 0, len(allergies)),
		Medications:       make([]models.DisclosedMedication, 0, len(medications)),
		EmergencyContacts: make([]models.DisclosedContact, 0, len(contacts)),
	}
	if profile.Phone != nil {
		phone := *profile.Phone
		d.Phone = &phone
	}

	for _, a := range allergies {
		d.Allergies = append(d.Allergies, models.DisclosedAllergy{Name: a.Name, Severity: a.Severity})
	}
	for _, m := range medications {
		d.Medications = append(d.Medications, models.DisclosedMedication{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
		})
	}
	for _, c := range contacts {
		d.EmergencyContacts = append(d.EmergencyContacts, models.DisclosedContact{
			Name:         c.Name,
			Relationship: c.Relationship,
			Phone:        c.Phone,
			Priority:     c.Priority,
		})
	}
	slices.SortStableFunc(d.EmergencyContacts, func(a, b models.DisclosedContact) int {
		return cmp.Or(cmp.Compare(a.Priority, b.Priority), cmp.Compare(a.Name, b.Name))
	})

	return d
}
