package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// (POST /auth/register).
func (c *Controller) Register(ctx echo.Context) error {
	var req RegisterJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	resp, err := c.authService.Register(ctx.Request().Context(), req, userMetadata(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, resp)
}

// (POST /auth/login).
func (c *Controller) Login(ctx echo.Context) error {
	var req LoginJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	resp, err := c.authService.Login(ctx.Request().Context(), req, userMetadata(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

// (POST /auth/refresh).
func (c *Controller) Refresh(ctx echo.Context) error {
	var req RefreshJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	resp, err := c.authService.Refresh(ctx.Request().Context(), req.RefreshToken, userMetadata(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

// (POST /auth/logout).
func (c *Controller) Logout(ctx echo.Context) error {
	var req LogoutJSONRequestBody
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	if err := c.authService.Logout(ctx.Request().Context(), req.RefreshToken, AccessClaims(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
