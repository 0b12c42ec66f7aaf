package models

// Patch types carry sparse updates: a nil field leaves the stored value
// unchanged, it never clears it.

type ProfilePatch struct {
	FullName  *string `json:"fullName,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Workplace *string `json:"workplace,omitempty"`
}

func (p ProfilePatch) Apply(dst *Profile) {
	setIfPresent(&dst.FullName, p.FullName)
	if p.BirthDate != nil {
		dst.BirthDate = copyString(p.BirthDate)
	}
	if p.Phone != nil {
		dst.Phone = copyString(p.Phone)
	}
	if p.Workplace != nil {
		dst.Workplace = copyString(p.Workplace)
	}
}

type HealthPatch struct {
	BloodType    *BloodType `json:"bloodType,omitempty"`
	MedicalNotes *string    `json:"medicalNotes,omitempty"`
}

func (p HealthPatch) Apply(dst *Health) {
	if p.BloodType != nil {
		dst.BloodType = *p.BloodType
	}
	setIfPresent(&dst.MedicalNotes, p.MedicalNotes)
}

type AllergyPatch struct {
	Name     *string          `json:"name,omitempty"`
	Severity *AllergySeverity `json:"severity,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
}

func (p AllergyPatch) Apply(dst *Allergy) {
	setIfPresent(&dst.Name, p.Name)
	if p.Severity != nil {
		dst.Severity = *p.Severity
	}
	setIfPresent(&dst.Notes, p.Notes)
}

type MedicationPatch struct {
	Name      *string `json:"name,omitempty"`
	Dosage    *string `json:"dosage,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (p MedicationPatch) Apply(dst *Medication) {
	setIfPresent(&dst.Name, p.Name)
	setIfPresent(&dst.Dosage, p.Dosage)
	setIfPresent(&dst.Frequency, p.Frequency)
	setIfPresent(&dst.Notes, p.Notes)
}

type EmergencyContactPatch struct {
	Name         *string `json:"name,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
}

func (p EmergencyContactPatch) Apply(dst *EmergencyContact) {
	setIfPresent(&dst.Name, p.Name)
	setIfPresent(&dst.Relationship, p.Relationship)
	setIfPresent(&dst.Phone, p.Phone)
	if p.Priority != nil {
		dst.Priority = *p.Priority
	}
}

type AddressPatch struct {
	Label     *AddressLabel `json:"label,omitempty"`
	IsPrimary *bool         `json:"isPrimary,omitempty"`
	Street    *string       `json:"street,omitempty"`
	Number    *string       `json:"number,omitempty"`
	City      *string       `json:"city,omitempty"`
	State     *string       `json:"state,omitempty"`
	Zip       *string       `json:"zip,omitempty"`
	Country   *string       `json:"country,omitempty"`
}

func (p AddressPatch) Apply(dst *Address) {
	if p.Label != nil {
		dst.Label = *p.Label
	}
	if p.IsPrimary != nil {
		dst.IsPrimary = *p.IsPrimary
	}
	setIfPresent(&dst.Street, p.Street)
	setIfPresent(&dst.Number, p.Number)
	setIfPresent(&dst.City, p.City)
	setIfPresent(&dst.State, p.State)
	setIfPresent(&dst.Zip, p.Zip)
	setIfPresent(&dst.Country, p.Country)
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func copyString(v *string) *string {
	s := *v
	return &s
}
