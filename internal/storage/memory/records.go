package memory

import (
	"context"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

func (m *Storage) recordsLocked(userID string) (*userRecords, error) {
	r, ok := m.records[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return r, nil
}

func (m *Storage) GetProfile(_ context.Context, userID string) (*models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return nil, err
	}
	p := r.profile
	return &p, nil
}

func (m *Storage) SaveProfile(_ context.Context, userID string, profile models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return err
	}
	r.profile = profile
	return nil
}

func (m *Storage) GetHealth(_ context.Context, userID string) (*models.Health, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return nil, err
	}
	h := r.health
	return &h, nil
}

func (m *Storage) SaveHealth(_ context.Context, userID string, health models.Health) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return err
	}
	r.health = health
	return nil
}

func (m *Storage) ListAllergies(_ context.Context, userID string) ([]models.Allergy, error) {
	return listRows(m, userID, func(r *userRecords) *table[models.Allergy] { return r.allergies })
}

func (m *Storage) GetAllergy(_ context.Context, userID, id string) (*models.Allergy, error) {
	return getRow(m, userID, id, func(r *userRecords) *table[models.Allergy] { return r.allergies })
}

func (m *Storage) SaveAllergy(_ context.Context, userID string, allergy models.Allergy) error {
	return putRow(m, userID, allergy.ID, allergy, func(r *userRecords) *table[models.Allergy] { return r.allergies })
}

func (m *Storage) DeleteAllergy(_ context.Context, userID, id string) error {
	return removeRow(m, userID, id, func(r *userRecords) *table[models.Allergy] { return r.allergies })
}

func (m *Storage) ListMedications(_ context.Context, userID string) ([]models.Medication, error) {
	return listRows(m, userID, func(r *userRecords) *table[models.Medication] { return r.medications })
}

func (m *Storage) GetMedication(_ context.Context, userID, id string) (*models.Medication, error) {
	return getRow(m, userID, id, func(r *userRecords) *table[models.Medication] { return r.medications })
}

func (m *Storage) SaveMedication(_ context.Context, userID string, medication models.Medication) error {
	return putRow(m, userID, medication.ID, medication, func(r *userRecords) *table[models.Medication] { return r.medications })
}

func (m *Storage) DeleteMedication(_ context.Context, userID, id string) error {
	return removeRow(m, userID, id, func(r *userRecords) *table[models.Medication] { return r.medications })
}

func (m *Storage) ListEmergencyContacts(_ context.Context, userID string) ([]models.EmergencyContact, error) {
	return listRows(m, userID, func(r *userRecords) *table[models.EmergencyContact] { return r.contacts })
}

func (m *Storage) GetEmergencyContact(_ context.Context, userID, id string) (*models.EmergencyContact, error) {
	return getRow(m, userID, id, func(r *userRecords) *table[models.EmergencyContact] { return r.contacts })
}

func (m *Storage) SaveEmergencyContact(_ context.Context, userID string, contact models.EmergencyContact) error {
	return putRow(m, userID, contact.ID, contact, func(r *userRecords) *table[models.EmergencyContact] { return r.contacts })
}

func (m *Storage) DeleteEmergencyContact(_ context.Context, userID, id string) error {
	return removeRow(m, userID, id, func(r *userRecords) *table[models.EmergencyContact] { return r.contacts })
}

func (m *Storage) ListAddresses(_ context.Context, userID string) ([]models.Address, error) {
	return listRows(m, userID, func(r *userRecords) *table[models.Address] { return r.addresses })
}

func (m *Storage) GetAddress(_ context.Context, userID, id string) (*models.Address, error) {
	return getRow(m, userID, id, func(r *userRecords) *table[models.Address] { return r.addresses })
}

func (m *Storage) SaveAddress(_ context.Context, userID string, address models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return err
	}
	if address.IsPrimary {
		for _, other := range r.addresses.list() {
			if other.ID != address.ID && other.IsPrimary {
				other.IsPrimary = false
				r.addresses.put(other.ID, other)
			}
		}
	}
	r.addresses.put(address.ID, address)
	return nil
}

func (m *Storage) DeleteAddress(_ context.Context, userID, id string) error {
	return removeRow(m, userID, id, func(r *userRecords) *table[models.Address] { return r.addresses })
}

func listRows[T any](m *Storage, userID string, pick func(*userRecords) *table[T]) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return nil, err
	}
	return pick(r).list(), nil
}

func getRow[T any](m *Storage, userID, id string, pick func(*userRecords) *table[T]) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return nil, err
	}
	v, ok := pick(r).get(id)
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func putRow[T any](m *Storage, userID, id string, v T, pick func(*userRecords) *table[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return err
	}
	pick(r).put(id, v)
	return nil
}

func removeRow[T any](m *Storage, userID, id string, pick func(*userRecords) *table[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.recordsLocked(userID)
	if err != nil {
		return err
	}
	if !pick(r).remove(id) {
		return storage.ErrNotFound
	}
	return nil
}
