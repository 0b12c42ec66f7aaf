package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/rryowa/medcard/internal/models"
)

type EmergencyTokenAPI struct {
	c *Client
}

func (a *EmergencyTokenAPI) Get(ctx context.Context) (*models.EmergencyToken, error) {
	var tok models.EmergencyToken
	if err := a.c.Do(ctx, http.MethodGet, "/me/emergency-token", nil, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Regenerate replaces the token. Printed QR codes carrying the old value stop
// working immediately.
func (a *EmergencyTokenAPI) Regenerate(ctx context.Context) (*models.EmergencyToken, error) {
	var tok models.EmergencyToken
	if err := a.c.Do(ctx, http.MethodPost, "/me/emergency-token/regenerate", nil, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// PublicViewAPI reads the first-responder view. It never sends credentials.
type PublicViewAPI struct {
	c *Client
}

func (a *PublicViewAPI) Get(ctx context.Context, token string) (*models.EmergencyDisclosure, error) {
	var d models.EmergencyDisclosure
	err := a.c.DoPublic(ctx, http.MethodGet, "/emergency/"+url.PathEscape(token), nil, &d)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, ErrEmergencyTokenInvalid
		}
		return nil, err
	}
	return &d, nil
}

// EmergencyURL is the link encoded into the QR code.
func EmergencyURL(publicBase, token string) string {
	return strings.TrimRight(publicBase, "/") + "/emergency/" + url.PathEscape(token)
}
