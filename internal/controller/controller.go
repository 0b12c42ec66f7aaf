//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=openapi/cfg.yaml openapi/openapi.yaml

package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/service"
	"github.com/rryowa/medcard/internal/util"
)

var _ ServerInterface = (*Controller)(nil)

// EmergencyViewPath is the echo route of the public disclosure endpoint.
const EmergencyViewPath = "/emergency/:token"

type Controller struct {
	zapLogger        *zap.SugaredLogger
	authService      *service.AuthService
	recordService    *service.RecordService
	emergencyService *service.EmergencyService
}

func NewController(
	logger *zap.SugaredLogger,
	authService *service.AuthService,
	recordService *service.RecordService,
	emergencyService *service.EmergencyService,
) *Controller {
	return &Controller{
		zapLogger:        logger,
		authService:      authService,
		recordService:    recordService,
		emergencyService: emergencyService,
	}
}

// (GET /ping).
func (c *Controller) CheckServer(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, "ok")
}

// UserID returns the owner id stored by the bearer middleware.
func UserID(ctx echo.Context) (string, error) {
	id, ok := ctx.Get(models.MwUserIDKey).(string)
	if !ok || id == "" {
		return "", util.NewResponseError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	}
	return id, nil
}

// AccessClaims returns the verified bearer claims, or nil on anonymous calls.
func AccessClaims(ctx echo.Context) *service.AccessClaims {
	claims, _ := ctx.Get(models.MwTokenKey).(*service.AccessClaims)
	return claims
}

func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return util.NewResponseError(http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	return nil
}

func includeNotes(v *IncludeNotes) bool {
	return v != nil && *v
}

func userMetadata(ctx echo.Context) models.UserMetadata {
	return models.UserMetadata{
		UserAgent: ctx.Request().UserAgent(),
		IPAddress: ctx.RealIP(),
	}
}
