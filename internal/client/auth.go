package client

import (
	"context"
	"net/http"

	"github.com/rryowa/medcard/internal/models"
)

type AuthAPI struct {
	c *Client
}

// Register creates an account and stores the returned session.
func (a *AuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.DoPublic(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if err := a.c.store.Save(credentialFrom(resp)); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and stores the returned session. A wrong password is an
// *APIError with status 401, never ErrSessionExpired.
func (a *AuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.c.DoPublic(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if err := a.c.store.Save(credentialFrom(resp)); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes the session remotely on a best-effort basis and always
// clears local credentials.
func (a *AuthAPI) Logout(ctx context.Context) error {
	cred, ok := a.c.store.Load()
	if ok && cred.RefreshToken != "" {
		payload, err := encodeBody(models.LogoutRequest{RefreshToken: cred.RefreshToken})
		if err == nil {
			status, body, err := a.c.send(ctx, http.MethodPost, "/auth/logout", payload, cred.AccessToken)
			if err == nil {
				err = decodeResponse(status, body, nil)
			}
			if err != nil {
				a.c.log.Warnw("Remote logout failed", "error", err)
			}
		}
	}
	return a.c.store.Clear()
}

func credentialFrom(resp models.AuthResponse) Credential {
	return Credential{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.UserID,
	}
}
