package models

// Profile is the owner's identity card. Nullable fields stay nil until set.
type Profile struct {
	FullName  string  `json:"fullName"`
	BirthDate *string `json:"birthDate"`
	Phone     *string `json:"phone"`
	Workplace *string `json:"workplace"`
}

type BloodType string

const (
	BloodTypeAPos    BloodType = "A+"
	BloodTypeANeg    BloodType = "A-"
	BloodTypeBPos    BloodType = "B+"
	BloodTypeBNeg    BloodType = "B-"
	BloodTypeABPos   BloodType = "AB+"
	BloodTypeABNeg   BloodType = "AB-"
	BloodTypeOPos    BloodType = "O+"
	BloodTypeONeg    BloodType = "O-"
	BloodTypeUnknown BloodType = "UNKNOWN"
)

func (b BloodType) Valid() bool {
	switch b {
	case BloodTypeAPos, BloodTypeANeg, BloodTypeBPos, BloodTypeBNeg,
		BloodTypeABPos, BloodTypeABNeg, BloodTypeOPos, BloodTypeONeg, BloodTypeUnknown:
		return true
	}
	return false
}

// Health is the stored health record. MedicalNotes is free text and is never
// part of an emergency disclosure.
type Health struct {
	BloodType    BloodType
	MedicalNotes string
}

type HealthInfo struct {
	BloodType       BloodType `json:"bloodType"`
	AllergyCount    int       `json:"allergyCount"`
	MedicationCount int       `json:"medicationCount"`
	MedicalNotes    *string   `json:"medicalNotes,omitempty"`
}

type AllergySeverity string

const (
	SeverityNone   AllergySeverity = ""
	SeverityLow    AllergySeverity = "LOW"
	SeverityMedium AllergySeverity = "MEDIUM"
	SeverityHigh   AllergySeverity = "HIGH"
)

func (s AllergySeverity) Valid() bool {
	switch s {
	case SeverityNone, SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type Allergy struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Severity AllergySeverity `json:"severity"`
	Notes    string          `json:"notes,omitempty"`
}

type CreateAllergyRequest struct {
	Name     string          `json:"name"`
	Severity AllergySeverity `json:"severity,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

type Medication struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Notes     string `json:"notes,omitempty"`
}

type CreateMedicationRequest struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type EmergencyContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Priority     int    `json:"priority"`
}

type CreateEmergencyContactRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone"`
	Priority     int    `json:"priority,omitempty"`
}

type AddressLabel string

const (
	AddressHome  AddressLabel = "HOME"
	AddressWork  AddressLabel = "WORK"
	AddressOther AddressLabel = "OTHER"
)

func (l AddressLabel) Valid() bool {
	return l == AddressHome || l == AddressWork || l == AddressOther
}

type Address struct {
	ID        string       `json:"id"`
	Label     AddressLabel `json:"label"`
	IsPrimary bool         `json:"isPrimary"`
	Street    string       `json:"street"`
	Number    string       `json:"number"`
	City      string       `json:"city"`
	State     string       `json:"state"`
	Zip       string       `json:"zip"`
	Country   string       `json:"country"`
}

type CreateAddressRequest struct {
	Label     AddressLabel `json:"label"`
	IsPrimary bool         `json:"isPrimary,omitempty"`
	Street    string       `json:"street,omitempty"`
	Number    string       `json:"number,omitempty"`
	City      string       `json:"city,omitempty"`
	State     string       `json:"state,omitempty"`
	Zip       string       `json:"zip,omitempty"`
	Country   string       `json:"country,omitempty"`
}
