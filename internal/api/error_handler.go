package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/service"
	"github.com/rryowa/medcard/internal/storage"
	"github.com/rryowa/medcard/internal/util"
)

// ErrorHandler maps errors to status and {code, message}. 5xx are logged, and
// their detail never reaches the client.
func ErrorHandler(log *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := mapError(err)
		if status >= http.StatusInternalServerError {
			log.Errorw("HTTP error", "error", err, "uri", c.Request().RequestURI)
		}

		if werr := c.JSON(status, body); werr != nil {
			log.Errorw("failed to write json response", "error", werr)
		}
	}
}

func mapError(err error) (int, models.ErrorResponse) {
	var respErr util.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Status, models.ErrorResponse{Code: respErr.Code, Message: respErr.Msg}
	}

	switch {
	case errors.Is(err, service.ErrEmergencyTokenNotFound):
		return http.StatusNotFound, models.ErrorResponse{Code: "NOT_FOUND", Message: service.ErrEmergencyTokenNotFound.Error()}
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, models.ErrorResponse{Code: "VALIDATION_ERROR", Message: err.Error()}
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, models.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: err.Error()}
	case errors.Is(err, service.ErrRefreshTokenInvalid):
		return http.StatusUnauthorized, models.ErrorResponse{Code: "INVALID_REFRESH_TOKEN", Message: err.Error()}
	case isUnauthorizedTokenError(err):
		return http.StatusUnauthorized, models.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid or expired access token"}
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, models.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrUserNotFound):
		return http.StatusNotFound, models.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := he.Message
		if s, ok := msg.(string); ok {
			return he.Code, models.ErrorResponse{Code: codeForStatus(he.Code), Message: s}
		}
		return he.Code, models.ErrorResponse{Code: codeForStatus(he.Code), Message: fmt.Sprint(msg)}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Code: "INTERNAL_ERROR", Message: "internal server error"}
}

func isUnauthorizedTokenError(err error) bool {
	return errors.Is(err, service.ErrTokenExpired) ||
		errors.Is(err, service.ErrTokenInvalid) ||
		errors.Is(err, service.ErrTokenRevoked) ||
		errors.Is(err, service.ErrTokenMalformed)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	}
	if status >= http.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "ERROR"
}
