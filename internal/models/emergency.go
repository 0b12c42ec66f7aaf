package models

import "time"

// EmergencyToken is what the owner sees: the opaque value encoded into the
// QR code and whether it currently resolves.
type EmergencyToken struct {
	Token  string `json:"token"`
	Active bool   `json:"active"`
}

// EmergencyTokenRecord is the stored form. A user has at most one record.
type EmergencyTokenRecord struct {
	UserID    string
	Token     string
	Active    bool
	CreatedAt time.Time
}

// EmergencyDisclosure is the read-only projection served to first
// responders. Fields are added here only by whitelist.
type EmergencyDisclosure struct {
	Name              string                `json:"name"`
	BloodType         BloodType             `json:"bloodType"`
	Phone             *string               `json:"phone"`
	Allergies         []DisclosedAllergy    `json:"allergies"`
	Medications       []DisclosedMedication `json:"medications"`
	EmergencyContacts []DisclosedContact    `json:"emergencyContacts"`
}

type DisclosedAllergy struct {
	Name     string          `json:"name"`
	Severity AllergySeverity `json:"severity"`
}

type DisclosedMedication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

type DisclosedContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Priority     int    `json:"priority"`
}
