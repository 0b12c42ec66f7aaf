package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfilePatch_AbsentFieldsLeaveValuesUnchanged(t *testing.T) {
	phone := "+55 11 99999-0000"
	p := Profile{FullName: "Ana Souza", Phone: &phone}

	var patch ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(`{"workplace":"Hospital"}`), &patch))
	patch.Apply(&p)

	require.Equal(t, "Ana Souza", p.FullName)
	require.NotNil(t, p.Phone)
	require.Equal(t, phone, *p.Phone)
	require.NotNil(t, p.Workplace)
	require.Equal(t, "Hospital", *p.Workplace)
}

func TestProfilePatch_DoesNotAliasPatchValues(t *testing.T) {
	birth := "1990-01-01"
	patch := ProfilePatch{BirthDate: &birth}

	var p Profile
	patch.Apply(&p)
	birth = "2000-12-31"

	require.Equal(t, "1990-01-01", *p.BirthDate)
}

func TestHealthPatch_Apply(t *testing.T) {
	h := Health{BloodType: BloodTypeOPos, MedicalNotes: "asthma"}

	bt := BloodTypeABNeg
	HealthPatch{BloodType: &bt}.Apply(&h)
	require.Equal(t, BloodTypeABNeg, h.BloodType)
	require.Equal(t, "asthma", h.MedicalNotes)

	empty := ""
	HealthPatch{MedicalNotes: &empty}.Apply(&h)
	require.Equal(t, "", h.MedicalNotes)
}

func TestAddressPatch_Apply(t *testing.T) {
	a := Address{Label: AddressHome, Street: "Rua A", City: "Recife"}
	primary := true
	city := "Olinda"
	AddressPatch{IsPrimary: &primary, City: &city}.Apply(&a)

	require.Equal(t, AddressHome, a.Label)
	require.True(t, a.IsPrimary)
	require.Equal(t, "Rua A", a.Street)
	require.Equal(t, "Olinda", a.City)
}

func TestEnumValidation(t *testing.T) {
	require.True(t, BloodTypeUnknown.Valid())
	require.False(t, BloodType("C+").Valid())
	require.True(t, SeverityNone.Valid())
	require.False(t, AllergySeverity("CRITICAL").Valid())
	require.True(t, AddressOther.Valid())
	require.False(t, AddressLabel("").Valid())
}
