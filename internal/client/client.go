package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/models"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 4 << 20
)

// Client talks to the medcard API. Authenticated calls carry the stored
// access token and go through one refresh-and-retry on 401.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	store       CredentialStore
	events      *Events
	coordinator *Coordinator
	log         *zap.SugaredLogger

	Auth              *AuthAPI
	Profile           *ProfileAPI
	Health            *HealthAPI
	Allergies         *AllergyAPI
	Medications       *MedicationAPI
	EmergencyContacts *EmergencyContactAPI
	Addresses         *AddressAPI
	EmergencyTokens   *EmergencyTokenAPI
	PublicView        *PublicViewAPI
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithStore(store CredentialStore) Option {
	return func(c *Client) { c.store = store }
}

func WithEvents(events *Events) Option {
	return func(c *Client) { c.events = events }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      NewMemoryStore(),
		events:     NewEvents(),
		log:        zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.coordinator = NewCoordinator(c.store, c.exchangeRefreshToken, c.log)

	c.Auth = &AuthAPI{c: c}
	c.Profile = &ProfileAPI{c: c}
	c.Health = &HealthAPI{c: c}
	c.Allergies = &AllergyAPI{c: c}
	c.Medications = &MedicationAPI{c: c}
	c.EmergencyContacts = &EmergencyContactAPI{c: c}
	c.Addresses = &AddressAPI{c: c}
	c.EmergencyTokens = &EmergencyTokenAPI{c: c}
	c.PublicView = &PublicViewAPI{c: c}

	return c
}

func (c *Client) Store() CredentialStore { return c.store }

func (c *Client) Events() *Events { return c.events }

// Do performs an authenticated call. body, when non-nil, is sent as JSON and
// a 2xx response is decoded into out unless it is 204 or out is nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}

	cred, _ := c.store.Load()
	status, respBody, err := c.send(ctx, method, path, payload, cred.AccessToken)
	if err != nil {
		return err
	}
	if status != http.StatusUnauthorized {
		return decodeResponse(status, respBody, out)
	}

	if !c.coordinator.EnsureFresh(ctx, cred.AccessToken) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return c.expireSession(cred)
	}

	cred, _ = c.store.Load()
	status, respBody, err = c.send(ctx, method, path, payload, cred.AccessToken)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		return c.expireSession(cred)
	}
	return decodeResponse(status, respBody, out)
}

// DoPublic performs a call without credentials and without the refresh
// protocol. A 401 is an ordinary *APIError.
func (c *Client) DoPublic(ctx context.Context, method, path string, body, out any) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}
	status, respBody, err := c.send(ctx, method, path, payload, "")
	if err != nil {
		return err
	}
	return decodeResponse(status, respBody, out)
}

func (c *Client) expireSession(used Credential) error {
	cleared, err := c.store.CompareAndClear(used)
	if err != nil {
		c.log.Warnw("Failed to clear credentials", "error", err)
	}
	if cleared {
		c.log.Infow("Session expired")
		c.events.publishSessionExpired()
	}
	return ErrSessionExpired
}

func (c *Client) exchangeRefreshToken(ctx context.Context, refreshToken string) (TokenPair, error) {
	payload, err := encodeBody(models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return TokenPair{}, err
	}

	status, respBody, err := c.send(ctx, http.MethodPost, "/auth/refresh", payload, "")
	if err != nil {
		return TokenPair{}, err
	}

	var resp models.RefreshResponse
	if err := decodeResponse(status, respBody, &resp); err != nil {
		return TokenPair{}, err
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return TokenPair{}, errors.New("refresh response is missing tokens")
	}
	return TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, accessToken string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", models.MwBearerPrefix+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return payload, nil
}

func decodeResponse(status int, body []byte, out any) error {
	if status >= 200 && status < 300 {
		if status == http.StatusNoContent || out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	apiErr := &APIError{Status: status}
	var errBody models.ErrorResponse
	if json.Unmarshal(body, &errBody) == nil {
		apiErr.Code = errBody.Code
		apiErr.Message = errBody.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", status)
	}
	return apiErr
}
