package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/storage"
)

type RecordRepository struct {
	db storage.DBTX
}

func NewRecordRepository(db storage.DBTX) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	var birthDate, phone, workplace sql.NullString
	query := `SELECT full_name, birth_date, phone, workplace FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.FullName, &birthDate, &phone, &workplace)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.BirthDate = fromNullString(birthDate)
	p.Phone = fromNullString(phone)
	p.Workplace = fromNullString(workplace)
	return &p, nil
}

func (r *RecordRepository) SaveProfile(ctx context.Context, userID string, profile models.Profile) error {
	query := `INSERT INTO profiles (user_id, full_name, birth_date, phone, workplace) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name, birth_date = EXCLUDED.birth_date,
		phone = EXCLUDED.phone, workplace = EXCLUDED.workplace`
	_, err := r.db.ExecContext(ctx, query, userID, profile.FullName,
		toNullString(profile.BirthDate), toNullString(profile.Phone), toNullString(profile.Workplace))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *RecordRepository) GetHealth(ctx context.Context, userID string) (*models.Health, error) {
	var h models.Health
	query := `SELECT blood_type, medical_notes FROM health_records WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&h.BloodType, &h.MedicalNotes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("get health: %w", err)
	}
	return &h, nil
}

func (r *RecordRepository) SaveHealth(ctx context.Context, userID string, health models.Health) error {
	query := `INSERT INTO health_records (user_id, blood_type, medical_notes) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET blood_type = EXCLUDED.blood_type, medical_notes = EXCLUDED.medical_notes`
	_, err := r.db.ExecContext(ctx, query, userID, string(health.BloodType), health.MedicalNotes)
	if err != nil {
		return fmt.Errorf("save health: %w", err)
	}
	return nil
}

func (r *RecordRepository) ListAllergies(ctx context.Context, userID string) ([]models.Allergy, error) {
	query := `SELECT id, name, severity, notes FROM allergies WHERE user_id = $1 ORDER BY created_at, id`
	return queryRows(ctx, r.db, query, []any{userID}, func(rows *sql.Rows) (models.Allergy, error) {
		var a models.Allergy
		err := rows.Scan(&a.ID, &a.Name, &a.Severity, &a.Notes)
		return a, err
	})
}

func (r *RecordRepository) GetAllergy(ctx context.Context, userID, id string) (*models.Allergy, error) {
	var a models.Allergy
	query := `SELECT id, name, severity, notes FROM allergies WHERE user_id = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&a.ID, &a.Name, &a.Severity, &a.Notes)
	if err != nil {
		return nil, rowError("get allergy", err)
	}
	return &a, nil
}

func (r *RecordRepository) SaveAllergy(ctx context.Context, userID string, allergy models.Allergy) error {
	query := `INSERT INTO allergies (id, user_id, name, severity, notes) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, severity = EXCLUDED.severity, notes = EXCLUDED.notes
		WHERE allergies.user_id = EXCLUDED.user_id`
	return r.exec(ctx, "save allergy", query,
		allergy.ID, userID, allergy.Name, string(allergy.Severity), allergy.Notes)
}

func (r *RecordRepository) DeleteAllergy(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "allergies", userID, id)
}

func (r *RecordRepository) ListMedications(ctx context.Context, userID string) ([]models.Medication, error) {
	query := `SELECT id, name, dosage, frequency, notes FROM medications WHERE user_id = $1 ORDER BY created_at, id`
	return queryRows(ctx, r.db, query, []any{userID}, func(rows *sql.Rows) (models.Medication, error) {
		var m models.Medication
		err := rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &m.Notes)
		return m, err
	})
}

func (r *RecordRepository) GetMedication(ctx context.Context, userID, id string) (*models.Medication, error) {
	var m models.Medication
	query := `SELECT id, name, dosage, frequency, notes FROM medications WHERE user_id = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &m.Notes)
	if err != nil {
		return nil, rowError("get medication", err)
	}
	return &m, nil
}

func (r *RecordRepository) SaveMedication(ctx context.Context, userID string, medication models.Medication) error {
	query := `INSERT INTO medications (id, user_id, name, dosage, frequency, notes) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, dosage = EXCLUDED.dosage,
		frequency = EXCLUDED.frequency, notes = EXCLUDED.notes
		WHERE medications.user_id = EXCLUDED.user_id`
	return r.exec(ctx, "save medication", query,
		medication.ID, userID, medication.Name, medication.Dosage, medication.Frequency, medication.Notes)
}

func (r *RecordRepository) DeleteMedication(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "medications", userID, id)
}

func (r *RecordRepository) ListEmergencyContacts(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	query := `SELECT id, name, relationship, phone, priority FROM emergency_contacts WHERE user_id = $1 ORDER BY created_at, id`
	return queryRows(ctx, r.db, query, []any{userID}, func(rows *sql.Rows) (models.EmergencyContact, error) {
		var c models.EmergencyContact
		err := rows.Scan(&c.ID, &c.Name, &c.Relationship, &c.Phone, &c.Priority)
		return c, err
	})
}

func (r *RecordRepository) GetEmergencyContact(ctx context.Context, userID, id string) (*models.EmergencyContact, error) {
	var c models.EmergencyContact
	query := `SELECT id, name, relationship, phone, priority FROM emergency_contacts WHERE user_id = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&c.ID, &c.Name, &c.Relationship, &c.Phone, &c.Priority)
	if err != nil {
		return nil, rowError("get emergency contact", err)
	}
	return &c, nil
}

func (r *RecordRepository) SaveEmergencyContact(ctx context.Context, userID string, contact models.EmergencyContact) error {
	query := `INSERT INTO emergency_contacts (id, user_id, name, relationship, phone, priority) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, relationship = EXCLUDED.relationship,
		phone = EXCLUDED.phone, priority = EXCLUDED.priority
		WHERE emergency_contacts.user_id = EXCLUDED.user_id`
	return r.exec(ctx, "save emergency contact", query,
		contact.ID, userID, contact.Name, contact.Relationship, contact.Phone, contact.Priority)
}

func (r *RecordRepository) DeleteEmergencyContact(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "emergency_contacts", userID, id)
}

const addressColumns = `id, label, is_primary, street, number, city, state, zip, country`

func scanAddress(row interface{ Scan(dest ...any) error }) (models.Address, error) {
	var a models.Address
	err := row.Scan(&a.ID, &a.Label, &a.IsPrimary, &a.Street, &a.Number, &a.City, &a.State, &a.Zip, &a.Country)
	return a, err
}

func (r *RecordRepository) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY created_at, id`
	return queryRows(ctx, r.db, query, []any{userID}, func(rows *sql.Rows) (models.Address, error) {
		return scanAddress(rows)
	})
}

func (r *RecordRepository) GetAddress(ctx context.Context, userID, id string) (*models.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 AND id = $2`
	a, err := scanAddress(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		return nil, rowError("get address", err)
	}
	return &a, nil
}

// SaveAddress upserts a single row. Callers that set IsPrimary go through
// Storage.SaveAddress so the other rows are cleared in the same transaction.
func (r *RecordRepository) SaveAddress(ctx context.Context, userID string, address models.Address) error {
	query := `INSERT INTO addresses (` + addressColumns + `, user_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET label = EXCLUDED.label, is_primary = EXCLUDED.is_primary,
		street = EXCLUDED.street, number = EXCLUDED.number, city = EXCLUDED.city, state = EXCLUDED.state,
		zip = EXCLUDED.zip, country = EXCLUDED.country
		WHERE addresses.user_id = EXCLUDED.user_id`
	return r.exec(ctx, "save address", query,
		address.ID, string(address.Label), address.IsPrimary, address.Street, address.Number,
		address.City, address.State, address.Zip, address.Country, userID)
}

func (r *RecordRepository) clearPrimaryAddress(ctx context.Context, userID, exceptID string) error {
	query := `UPDATE addresses SET is_primary = FALSE WHERE user_id = $1 AND id <> $2 AND is_primary`
	return r.exec(ctx, "clear primary address", query, userID, exceptID)
}

func (r *RecordRepository) DeleteAddress(ctx context.Context, userID, id string) error {
	return r.deleteOwned(ctx, "addresses", userID, id)
}

func (r *RecordRepository) exec(ctx context.Context, op, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// deleteOwned removes a row only if it belongs to userID. table is one of the
// fixed record table names above, never user input.
func (r *RecordRepository) deleteOwned(ctx context.Context, table, userID, id string) error {
	query := `DELETE FROM ` + table + ` WHERE user_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		if isMalformedID(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func queryRows[T any](
	ctx context.Context,
	db storage.DBTX,
	query string,
	args []any,
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func rowError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return storage.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
