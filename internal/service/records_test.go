package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rryowa/medcard/internal/models"
)

func TestHealth_IncludeNotesAndCounts(t *testing.T) {
	env := newTestEnv(t)
	userID := seedOwner(t, env)
	ctx := context.Background()

	info, err := env.records.GetHealth(ctx, userID, false)
	require.NoError(t, err)
	assert.Equal(t, models.BloodTypeONeg, info.BloodType)
	assert.Equal(t, 1, info.AllergyCount)
	assert.Equal(t, 1, info.MedicationCount)
	assert.Nil(t, info.MedicalNotes)

	info, err = env.records.GetHealth(ctx, userID, true)
	require.NoError(t, err)
	require.NotNil(t, info.MedicalNotes)
	assert.Equal(t, "private history", *info.MedicalNotes)
}

func TestListAllergies_NotesHiddenByDefault(t *testing.T) {
	env := newTestEnv(t)
	userID := seedOwner(t, env)
	ctx := context.Background()

	hidden, err := env.records.ListAllergies(ctx, userID, false)
	require.NoError(t, err)
	require.Len(t, hidden, 1)
	assert.Empty(t, hidden[0].Notes)

	shown, err := env.records.ListAllergies(ctx, userID, true)
	require.NoError(t, err)
	assert.Equal(t, "anaphylaxis 2019", shown[0].Notes)
}

func TestUpdateHealth_RejectsUnknownBloodType(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "ana@example.com").UserID

	bt := models.BloodType("C+")
	_, err := env.records.UpdateHealth(context.Background(), userID, models.HealthPatch{BloodType: &bt})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfile_SparsePatch(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "ana@example.com").UserID
	ctx := context.Background()

	_, err := env.records.UpdateProfile(ctx, userID, models.ProfilePatch{Phone: strPtr("123")})
	require.NoError(t, err)

	p, err := env.records.UpdateProfile(ctx, userID, models.ProfilePatch{Workplace: strPtr("Clinic")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", p.FullName)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "123", *p.Phone)

	_, err = env.records.UpdateProfile(ctx, userID, models.ProfilePatch{BirthDate: strPtr("12/04/1990")})
	require.ErrorIs(t, err, ErrValidation)
	_, err = env.records.UpdateProfile(ctx, userID, models.ProfilePatch{FullName: strPtr("  ")})
	require.ErrorIs(t, err, ErrValidation)
}

func TestRecordCRUD_NotFound(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "ana@example.com").UserID
	ctx := context.Background()

	_, err := env.records.UpdateMedication(ctx, userID, "missing", models.MedicationPatch{Name: strPtr("x")})
	assert.True(t, IsNotFound(err))

	err = env.records.DeleteEmergencyContact(ctx, userID, "missing")
	assert.True(t, IsNotFound(err))
}

func TestRecords_OwnerIsolation(t *testing.T) {
	env := newTestEnv(t)
	owner := seedOwner(t, env)
	other := env.register(t, "bruno@example.com").UserID
	ctx := context.Background()

	allergies, err := env.records.ListAllergies(ctx, owner, false)
	require.NoError(t, err)

	_, err = env.records.UpdateAllergy(ctx, other, allergies[0].ID, models.AllergyPatch{Name: strPtr("hijack")})
	assert.True(t, IsNotFound(err))
}

func TestAddresses_PrimaryMovesOnUpdate(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "ana@example.com").UserID
	ctx := context.Background()

	home, err := env.records.CreateAddress(ctx, userID, models.CreateAddressRequest{Label: models.AddressHome, IsPrimary: true})
	require.NoError(t, err)
	work, err := env.records.CreateAddress(ctx, userID, models.CreateAddressRequest{Label: models.AddressWork})
	require.NoError(t, err)

	primary := true
	_, err = env.records.UpdateAddress(ctx, userID, work.ID, models.AddressPatch{IsPrimary: &primary})
	require.NoError(t, err)

	list, err := env.records.ListAddresses(ctx, userID)
	require.NoError(t, err)
	for _, a := range list {
		assert.Equal(t, a.ID == work.ID, a.IsPrimary, a.ID)
	}
	assert.NotEqual(t, home.ID, work.ID)

	_, err = env.records.CreateAddress(ctx, userID, models.CreateAddressRequest{Label: "CABIN"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateEmergencyContact_Validation(t *testing.T) {
	env := newTestEnv(t)
	userID := env.register(t, "ana@example.com").UserID
	ctx := context.Background()

	_, err := env.records.CreateEmergencyContact(ctx, userID, models.CreateEmergencyContactRequest{Name: "Bruno"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.records.CreateEmergencyContact(ctx, userID, models.CreateEmergencyContactRequest{Phone: "1"})
	require.ErrorIs(t, err, ErrValidation)
}
