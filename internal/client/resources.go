package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rryowa/medcard/internal/models"
)

func withIncludeNotes(path string, includeNotes bool) string {
	return path + "?includeNotes=" + strconv.FormatBool(includeNotes)
}

func itemPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

type ProfileAPI struct {
	c *Client
}

func (a *ProfileAPI) Get(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := a.c.Do(ctx, http.MethodGet, "/me/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *ProfileAPI) Update(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error) {
	var p models.Profile
	if err := a.c.Do(ctx, http.MethodPut, "/me/profile", patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type HealthAPI struct {
	c *Client
}

func (a *HealthAPI) Get(ctx context.Context, includeNotes bool) (*models.HealthInfo, error) {
	var h models.HealthInfo
	if err := a.c.Do(ctx, http.MethodGet, withIncludeNotes("/me/health", includeNotes), nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (a *HealthAPI) Update(ctx context.Context, patch models.HealthPatch) (*models.HealthInfo, error) {
	var h models.HealthInfo
	if err := a.c.Do(ctx, http.MethodPut, "/me/health", patch, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

type AllergyAPI struct {
	c *Client
}

const allergiesPath = "/me/allergies"

func (a *AllergyAPI) List(ctx context.Context, includeNotes bool) ([]models.Allergy, error) {
	var list []models.Allergy
	if err := a.c.Do(ctx, http.MethodGet, withIncludeNotes(allergiesPath, includeNotes), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *AllergyAPI) Create(ctx context.Context, req models.CreateAllergyRequest) (*models.Allergy, error) {
	var out models.Allergy
	if err := a.c.Do(ctx, http.MethodPost, allergiesPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AllergyAPI) Update(ctx context.Context, id string, patch models.AllergyPatch) (*models.Allergy, error) {
	var out models.Allergy
	if err := a.c.Do(ctx, http.MethodPut, itemPath(allergiesPath, id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AllergyAPI) Delete(ctx context.Context, id string) error {
	return a.c.Do(ctx, http.MethodDelete, itemPath(allergiesPath, id), nil, nil)
}

type MedicationAPI struct {
	c *Client
}

const medicationsPath = "/me/medications"

func (a *MedicationAPI) List(ctx context.Context, includeNotes bool) ([]models.Medication, error) {
	var list []models.Medication
	if err := a.c.Do(ctx, http.MethodGet, withIncludeNotes(medicationsPath, includeNotes), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *MedicationAPI) Create(ctx context.Context, req models.CreateMedicationRequest) (*models.Medication, error) {
	var out models.Medication
	if err := a.c.Do(ctx, http.MethodPost, medicationsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MedicationAPI) Update(ctx context.Context, id string, patch models.MedicationPatch) (*models.Medication, error) {
	var out models.Medication
	if err := a.c.Do(ctx, http.MethodPut, itemPath(medicationsPath, id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MedicationAPI) Delete(ctx context.Context, id string) error {
	return a.c.Do(ctx, http.MethodDelete, itemPath(medicationsPath, id), nil, nil)
}

type EmergencyContactAPI struct {
	c *Client
}

const contactsPath = "/me/emergency-contacts"

func (a *EmergencyContactAPI) List(ctx context.Context) ([]models.EmergencyContact, error) {
	var list []models.EmergencyContact
	if err := a.c.Do(ctx, http.MethodGet, contactsPath, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *EmergencyContactAPI) Create(
	ctx context.Context,
	req models.CreateEmergencyContactRequest,
) (*models.EmergencyContact, error) {
	var out models.EmergencyContact
	if err := a.c.Do(ctx, http.MethodPost, contactsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *EmergencyContactAPI) Update(
	ctx context.Context,
	id string,
	patch models.EmergencyContactPatch,
) (*models.EmergencyContact, error) {
	var out models.EmergencyContact
	if err := a.c.Do(ctx, http.MethodPut, itemPath(contactsPath, id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *EmergencyContactAPI) Delete(ctx context.Context, id string) error {
	return a.c.Do(ctx, http.MethodDelete, itemPath(contactsPath, id), nil, nil)
}

type AddressAPI struct {
	c *Client
}

const addressesPath = "/me/addresses"

func (a *AddressAPI) List(ctx context.Context) ([]models.Address, error) {
	var list []models.Address
	if err := a.c.Do(ctx, http.MethodGet, addressesPath, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *AddressAPI) Create(ctx context.Context, req models.CreateAddressRequest) (*models.Address, error) {
	var out models.Address
	if err := a.c.Do(ctx, http.MethodPost, addressesPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AddressAPI) Update(ctx context.Context, id string, patch models.AddressPatch) (*models.Address, error) {
	var out models.Address
	if err := a.c.Do(ctx, http.MethodPut, itemPath(addressesPath, id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AddressAPI) Delete(ctx context.Context, id string) error {
	return a.c.Do(ctx, http.MethodDelete, itemPath(addressesPath, id), nil, nil)
}
