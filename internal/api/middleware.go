package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/controller"
	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/service"
	"github.com/rryowa/medcard/internal/storage"
	"github.com/rryowa/medcard/internal/util"
)

const protectedPrefix = "/me/"

// BearerAuthMiddleware verifies "Authorization: Bearer <jwt>". Routes under
// /me/ require it; elsewhere a valid token is attached to the context and an
// invalid one is ignored.
func BearerAuthMiddleware(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			required := strings.HasPrefix(c.Path(), protectedPrefix)

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, models.MwBearerPrefix) {
				if required {
					return util.NewResponseError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
				}
				return next(c)
			}

			claims, err := tokens.ValidateAccessToken(c.Request().Context(), strings.TrimPrefix(header, models.MwBearerPrefix))
			if err != nil {
				if required {
					return err
				}
				return next(c)
			}

			c.Set(models.MwUserIDKey, claims.UserID)
			c.Set(models.MwTokenKey, claims)

			return next(c)
		}
	}
}

// RateLimitMiddleware limits requests per client IP on the given echo routes.
// A limiter failure lets the request through.
func RateLimitMiddleware(limiter storage.RateLimiter, log *zap.SugaredLogger, paths ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil || !slices.Contains(paths, c.Path()) {
				return next(c)
			}

			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Errorw("rate limiter failed", "error", err, "ip", c.RealIP())
				return next(c)
			}
			if !allowed {
				return util.NewResponseError(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many requests")
			}
			return next(c)
		}
	}
}

func GetLoggerMiddlewareConfig(a *API) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,

		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			uri := v.URI
			// public tokens are credentials, keep them out of the logs
			if c.Path() == controller.EmergencyViewPath {
				uri = "/emergency/***"
			}
			fields := []interface{}{
				"method", c.Request().Method,
				"uri", uri,
				"status", v.Status,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
				a.log.Errorw("Request", fields...)
			} else {
				a.log.Infow("Request", fields...)
			}
			return nil
		},
	}
}
