// Command webhook-receiver is a local sink for medcard webhooks. It logs
// every delivery it gets.
package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/rryowa/medcard/internal/service"
	"github.com/rryowa/medcard/internal/util"
)

const defaultAddr = ":9090"

func main() {
	logger := util.NewZapLogger("info")

	addr := os.Getenv("WEBHOOK_RECEIVER_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	e := echo.New()
	e.HideBanner = true
	e.POST("/", func(c echo.Context) error {
		var payload service.WebhookPayload
		if err := c.Bind(&payload); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Error parsing JSON")
		}

		logger.Infow("Received webhook",
			"event", payload.Event,
			"userID", payload.UserID,
			"occurredAt", payload.OccurredAt,
		)
		return c.String(http.StatusOK, "Webhook received!")
	})

	logger.Infof("Webhook receiver listening on %s", addr)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
