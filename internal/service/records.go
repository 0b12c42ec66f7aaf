package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

const birthDateLayout = "2006-01-02"

// RecordService owns validation and notes filtering for the owner's records.
// Storage errors are passed through wrapped, so ErrNotFound survives.
type RecordService struct {
	storage storage.Storage
	log     *zap.SugaredLogger
}

func NewRecordService(storage storage.Storage, log *zap.SugaredLogger) *RecordService {
	return &RecordService{storage: storage, log: log}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func (s *RecordService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *RecordService) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Profile, error) {
	if patch.FullName != nil && strings.TrimSpace(*patch.FullName) == "" {
		return nil, validationError("fullName must not be empty")
	}
	if patch.BirthDate != nil && *patch.BirthDate != "" {
		if _, err := time.Parse(birthDateLayout, *patch.BirthDate); err != nil {
			return nil, validationError("birthDate must be YYYY-MM-DD")
		}
	}

	p, err := s.storage.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	patch.Apply(p)
	if err := s.storage.SaveProfile(ctx, userID, *p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func (s *RecordService) GetHealth(ctx context.Context, userID string, includeNotes bool) (*models.HealthInfo, error) {
	h, err := s.storage.GetHealth(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get health: %w", err)
	}
	return s.healthInfo(ctx, userID, h, includeNotes)
}

func (s *RecordService) UpdateHealth(
	ctx context.Context,
	userID string,
	patch models.HealthPatch,
) (*models.HealthInfo, error) {
	if patch.BloodType != nil && !patch.BloodType.Valid() {
		return nil, validationError("unknown blood type %q", *patch.BloodType)
	}

	h, err := s.storage.GetHealth(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get health: %w", err)
	}
	patch.Apply(h)
	if err := s.storage.SaveHealth(ctx, userID, *h); err != nil {
		return nil, fmt.Errorf("save health: %w", err)
	}
	return s.healthInfo(ctx, userID, h, true)
}

func (s *RecordService) healthInfo(
	ctx context.Context,
	userID string,
	h *models.Health,
	includeNotes bool,
) (*models.HealthInfo, error) {
	allergies, err := s.storage.ListAllergies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list allergies: %w", err)
	}
	medications, err := s.storage.ListMedications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}

	info := &models.HealthInfo{
		BloodType:       h.BloodType,
		AllergyCount:    len(allergies),
		MedicationCount: len(medications),
	}
	if includeNotes {
		notes := h.MedicalNotes
		info.MedicalNotes = &notes
	}
	return info, nil
}

func (s *RecordService) ListAllergies(ctx context.Context, userID string, includeNotes bool) ([]models.Allergy, error) {
	list, err := s.storage.ListAllergies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list allergies: %w", err)
	}
	if !includeNotes {
		for i := range list {
			list[i].Notes = ""
		}
	}
	return list, nil
}

func (s *RecordService) CreateAllergy(
	ctx context.Context,
	userID string,
	req models.CreateAllergyRequest,
) (*models.Allergy, error) {
	a := models.Allergy{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Severity: req.Severity,
		Notes:    req.Notes,
	}
	if err := validateAllergy(a); err != nil {
		return nil, err
	}
	if err := s.storage.SaveAllergy(ctx, userID, a); err != nil {
		return nil, fmt.Errorf("save allergy: %w", err)
	}
	return &a, nil
}

func (s *RecordService) UpdateAllergy(
	ctx context.Context,
	userID, id string,
	patch models.AllergyPatch,
) (*models.Allergy, error) {
	a, err := s.storage.GetAllergy(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get allergy: %w", err)
	}
	patch.Apply(a)
	if err := validateAllergy(*a); err != nil {
		return nil, err
	}
	if err := s.storage.SaveAllergy(ctx, userID, *a); err != nil {
		return nil, fmt.Errorf("save allergy: %w", err)
	}
	return a, nil
}

func (s *RecordService) DeleteAllergy(ctx context.Context, userID, id string) error {
	if err := s.storage.DeleteAllergy(ctx, userID, id); err != nil {
		return fmt.Errorf("delete allergy: %w", err)
	}
	return nil
}

func validateAllergy(a models.Allergy) error {
	if a.Name == "" {
		return validationError("name is required")
	}
	if !a.Severity.Valid() {
		return validationError("unknown severity %q", a.Severity)
	}
	return nil
}

func (s *RecordService) ListMedications(ctx context.Context, userID string, includeNotes bool) ([]models.Medication, error) {
	list, err := s.storage.ListMedications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	if !includeNotes {
		for i := range list {
			list[i].Notes = ""
		}
	}
	return list, nil
}

func (s *RecordService) CreateMedication(
	ctx context.Context,
	userID string,
	req models.CreateMedicationRequest,
) (*models.Medication, error) {
	m := models.Medication{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Notes:     req.Notes,
	}
	if m.Name == "" {
		return nil, validationError("name is required")
	}
	if err := s.storage.SaveMedication(ctx, userID, m); err != nil {
		return nil, fmt.Errorf("save medication: %w", err)
	}
	return &m, nil
}

func (s *RecordService) UpdateMedication(
	ctx context.Context,
	userID, id string,
	patch models.MedicationPatch,
) (*models.Medication, error) {
	m, err := s.storage.GetMedication(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get medication: %w", err)
	}
	patch.Apply(m)
	if strings.TrimSpace(m.Name) == "" {
		return nil, validationError("name is required")
	}
	if err := s.storage.SaveMedication(ctx, userID, *m); err != nil {
		return nil, fmt.Errorf("save medication: %w", err)
	}
	return m, nil
}

func (s *RecordService) DeleteMedication(ctx context.Context, userID, id string) error {
	if err := s.storage.DeleteMedication(ctx, userID, id); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}

func (s *RecordService) ListEmergencyContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	list, err := s.storage.ListEmergencyContacts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list emergency contacts: %w", err)
	}
	return list, nil
}

func (s *RecordService) CreateEmergencyContact(
	ctx context.Context,
	userID string,
	req models.CreateEmergencyContactRequest,
) (*models.EmergencyContact, error) {
	c := models.EmergencyContact{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Relationship: req.Relationship,
		Phone:        strings.TrimSpace(req.Phone),
		Priority:     req.Priority,
	}
	if err := validateContact(c); err != nil {
		return nil, err
	}
	if err := s.storage.SaveEmergencyContact(ctx, userID, c); err != nil {
		return nil, fmt.Errorf("save emergency contact: %w", err)
	}
	return &c, nil
}

func (s *RecordService) UpdateEmergencyContact(
	ctx context.Context,
	userID, id string,
	patch models.EmergencyContactPatch,
) (*models.EmergencyContact, error) {
	c, err := s.storage.GetEmergencyContact(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get emergency contact: %w", err)
	}
	patch.Apply(c)
	if err := validateContact(*c); err != nil {
		return nil, err
	}
	if err := s.storage.SaveEmergencyContact(ctx, userID, *c); err != nil {
		return nil, fmt.Errorf("save emergency contact: %w", err)
	}
	return c, nil
}

func (s *RecordService) DeleteEmergencyContact(ctx context.Context, userID, id string) error {
	if err := s.storage.DeleteEmergencyContact(ctx, userID, id); err != nil {
		return fmt.Errorf("delete emergency contact: %w", err)
	}
	return nil
}

func validateContact(c models.EmergencyContact) error {
	if strings.TrimSpace(c.Name) == "" {
		return validationError("name is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return validationError("phone is required")
	}
	if c.Priority < 0 {
		return validationError("priority must not be negative")
	}
	return nil
}

func (s *RecordService) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	list, err := s.storage.ListAddresses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return list, nil
}

func (s *RecordService) CreateAddress(
	ctx context.Context,
	userID string,
	req models.CreateAddressRequest,
) (*models.Address, error) {
	a := models.Address{
		ID:        uuid.NewString(),
		Label:     req.Label,
		IsPrimary: req.IsPrimary,
		Street:    req.Street,
		Number:    req.Number,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
	}
	if !a.Label.Valid() {
		return nil, validationError("unknown address label %q", a.Label)
	}
	if err := s.storage.SaveAddress(ctx, userID, a); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}
	return &a, nil
}

func (s *RecordService) UpdateAddress(
	ctx context.Context,
	userID, id string,
	patch models.AddressPatch,
) (*models.Address, error) {
	a, err := s.storage.GetAddress(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}
	patch.Apply(a)
	if !a.Label.Valid() {
		return nil, validationError("unknown address label %q", a.Label)
	}
	if err := s.storage.SaveAddress(ctx, userID, *a); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}
	return a, nil
}

func (s *RecordService) DeleteAddress(ctx context.Context, userID, id string) error {
	if err := s.storage.DeleteAddress(ctx, userID, id); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

// IsNotFound reports whether err means the record does not exist for the user.
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrUserNotFound)
}
