package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultHTTPStatusThreshold = 300
	webhookTimeout             = 10 * time.Second

	EventEmergencyTokenRegenerated = "emergency_token.regenerated"
)

// WebhookPayload is posted to WEBHOOK_URL. It never carries token values.
type WebhookPayload struct {
	Event      string    `json:"event"`
	UserID     string    `json:"userId"`
	OccurredAt time.Time `json:"occurredAt"`
}

type WebhookService struct {
	client     *http.Client
	log        *zap.SugaredLogger
	webhookURL string
	wg         sync.WaitGroup
}

func NewWebhookService(log *zap.SugaredLogger, webhookURL string) *WebhookService {
	return &WebhookService{
		client:     &http.Client{Timeout: webhookTimeout},
		log:        log,
		webhookURL: webhookURL,
	}
}

func (s *WebhookService) NotifyTokenRegenerated(ctx context.Context, userID string) {
	s.send(ctx, WebhookPayload{
		Event:      EventEmergencyTokenRegenerated,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})
}

// Wait blocks until in-flight deliveries finish. Used on shutdown.
func (s *WebhookService) Wait() {
	s.wg.Wait()
}

func (s *WebhookService) send(ctx context.Context, data WebhookPayload) {
	if s.webhookURL == "" {
		return
	}

	// delivery outlives the request that triggered it
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		payload, err := json.Marshal(data)
		if err != nil {
			s.log.Errorw("failed to marshal webhook payload", "error", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(payload))
		if err != nil {
			s.log.Errorw("failed to create webhook request", "error", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			s.log.Errorw("failed to send webhook", "error", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= defaultHTTPStatusThreshold {
			s.log.Warnw("webhook returned non-2xx status", "status", resp.StatusCode)
		}
	}()
}
