package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// (GET /me/emergency-token).
func (c *Controller) GetEmergencyToken(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}

	tok, err := c.emergencyService.GetToken(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tok)
}

// (POST /me/emergency-token/regenerate).
func (c *Controller) RegenerateEmergencyToken(ctx echo.Context) error {
	userID, err := UserID(ctx)
	if err != nil {
		return err
	}

	tok, err := c.emergencyService.RegenerateToken(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tok)
}

// (GET /emergency/{token}). Public, no bearer.
func (c *Controller) GetEmergencyView(ctx echo.Context, token string) error {
	disclosure, err := c.emergencyService.Resolve(ctx.Request().Context(), token)
	if err != nil {
		return err
	}
	ctx.Response().Header().Set("Cache-Control", "no-store")
	return ctx.JSON(http.StatusOK, disclosure)
}
