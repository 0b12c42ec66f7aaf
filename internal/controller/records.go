package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// (GET /me/profile).
func (c *Controller) GetProfile(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	p, err := c.recordService.GetProfile(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

// (PUT /me/profile).
func (c *Controller) UpdateProfile(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var patch UpdateProfileJSONRequestBody
	if err := bindBody(ctx, &patch); err != nil {
		return err
	}
	p, err := c.recordService.UpdateProfile(ctx.Request().Context(), userID, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}

// (GET /me/health).
func (c *Controller) GetHealth(ctx echo.Context, params GetHealthParams) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	info, err := c.recordService.GetHealth(ctx.Request().Context(), userID, includeNotes(params.IncludeNotes))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, info)
}

// (PUT /me/health).
func (c *Controller) UpdateHealth(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var patch UpdateHealthJSONRequestBody
	if err := bindBody(ctx, &patch); err != nil {
		return err
	}
	info, err := c.recordService.UpdateHealth(ctx.Request().Context(), userID, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, info)
}

// (GET /me/allergies).
func (c *Controller) ListAllergies(ctx echo.Context, params ListAllergiesParams) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	list, err := c.recordService.ListAllergies(ctx.Request().Context(), userID, includeNotes(params.IncludeNotes))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, list)
}

// (POST /me/allergies).
func (c *Controller) CreateAllergy(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var req CreateAllergyJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	a, err := c.recordService.CreateAllergy(ctx.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

// (PUT /me/allergies/{id}).
func (c *Controller) UpdateAllergy(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var patch UpdateAllergyJSONRequestBody
	if err := bindBody(ctx, &patch); err != nil {
		return err
	}
	a, err := c.recordService.UpdateAllergy(ctx.Request().Context(), userID, id, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

// (DELETE /me/allergies/{id}).
func (c *Controller) DeleteAllergy(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	if err := c.recordService.DeleteAllergy(ctx.Request().Context(), userID, id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// (GET /me/medications).
func (c *Controller) ListMedications(ctx echo.Context, params ListMedicationsParams) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	list, err := c.recordService.ListMedications(ctx.Request().Context(), userID, includeNotes(params.IncludeNotes))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, list)
}

// (POST /me/medications).
func (c *Controller) CreateMedication(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var req CreateMedicationJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	m, err := c.recordService.CreateMedication(ctx.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, m)
}

// (PUT /me/medications/{id}).
func (c *Controller) UpdateMedication(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var patch UpdateMedicationJSONRequestBody
	if err := bindBody(ctx, &patch); err != nil {
		return err
	}
	m, err := c.recordService.UpdateMedication(ctx.Request().Context(), userID, id, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, m)
}

// (DELETE /me/medications/{id}).
func (c *Controller) DeleteMedication(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	if err := c.recordService.DeleteMedication(ctx.Request().Context(), userID, id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// (GET /me/emergency-contacts).
func (c *Controller) ListEmergencyContacts(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	list, err := c.recordService.ListEmergencyContacts(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, list)
}

// (POST /me/emergency-contacts).
func (c *Controller) CreateEmergencyContact(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var req CreateEmergencyContactJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	contact, err := c.recordService.CreateEmergencyContact(ctx.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, contact)
}

// (PUT /me/emergency-contacts/{id}).
func (c *Controller) UpdateEmergencyContact(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var patch UpdateEmergencyContactJSONRequestBody
	if err := bindBody(ctx, &patch); err != nil {
		return err
	}
	contact, err := c.recordService.UpdateEmergencyContact(ctx.Request().Context(), userID, id, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, contact)
}

// (DELETE /me/emergency-contacts/{id}).
func (c *Controller) DeleteEmergencyContact(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	if err := c.recordService.DeleteEmergencyContact(ctx.Request().Context(), userID, id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// (GET /me/addresses).
func (c *Controller) ListAddresses(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	list, err := c.recordService.ListAddresses(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, list)
}

// (POST /me/addresses).
func (c *Controller) CreateAddress(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var req CreateAddressJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	a, err := c.recordService.CreateAddress(ctx.Request().Context(), userID, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

// (PUT /me/addresses/{id}).
func (c *Controller) UpdateAddress(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	var patch UpdateAddressJSONRequestBody
	if err := bindBody(ctx, &patch); err != nil {
		return err
	}
	a, err := c.recordService.UpdateAddress(ctx.Request().Context(), userID, id, patch)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

// (DELETE /me/addresses/{id}).
func (c *Controller) DeleteAddress(ctx echo.Context, id ID) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}
	if err := c.recordService.DeleteAddress(ctx.Request().Context(), userID, id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
