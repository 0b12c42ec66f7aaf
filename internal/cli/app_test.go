package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/client"
	"github.com/rryowa/medcard/internal/models"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func() ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}

func newTestApp(t *testing.T, handler http.Handler, stdin string) (*App, *client.Client, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := client.New(srv.URL)
	out := &bytes.Buffer{}
	app, err := NewApp(c, "https://med.example", strings.NewReader(stdin), out, zap.NewNop().Sugar())
	require.NoError(t, err)
	return app, c, out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_PromptsForEmailAndStoresSession(t *testing.T) {
	stubPassword(t, "s3cret-pass")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "ana@example.com" || req.Password != "s3cret-pass" {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, models.AuthResponse{UserID: "u1", AccessToken: "a", RefreshToken: "r"})
	})

	app, c, out := newTestApp(t, mux, "ana@example.com\n")

	require.NoError(t, app.Run(context.Background(), []string{"login"}))
	assert.Contains(t, out.String(), "Login successful")

	cred, ok := c.Store().Load()
	require.True(t, ok)
	assert.Equal(t, "u1", cred.UserID)
}

func TestToken_PrintsEmergencyURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /me/emergency-token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.EmergencyToken{Token: "tok_123", Active: true})
	})

	app, c, out := newTestApp(t, mux, "")
	require.NoError(t, c.Store().Save(client.Credential{AccessToken: "a", RefreshToken: "r", UserID: "u1"}))

	require.NoError(t, app.Run(context.Background(), []string{"token"}))
	assert.Contains(t, out.String(), "https://med.example/emergency/tok_123")
}

func TestExport_WritesFileWithNotes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /me/profile", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.Profile{FullName: "Ana Souza"})
	})
	mux.HandleFunc("GET /me/health", func(w http.ResponseWriter, r *http.Request) {
		h := models.HealthInfo{BloodType: models.BloodTypeOPos}
		if r.URL.Query().Get("includeNotes") == "true" {
			notes := "asthma"
			h.MedicalNotes = &notes
		}
		writeJSON(w, http.StatusOK, h)
	})
	mux.HandleFunc("GET /me/allergies", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.Allergy{})
	})
	mux.HandleFunc("GET /me/medications", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.Medication{})
	})
	mux.HandleFunc("GET /me/emergency-contacts", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.EmergencyContact{})
	})
	mux.HandleFunc("GET /me/addresses", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.Address{})
	})

	app, c, out := newTestApp(t, mux, "")
	require.NoError(t, c.Store().Save(client.Credential{AccessToken: "a", RefreshToken: "r", UserID: "u1"}))

	path := filepath.Join(t.TempDir(), "medcard.json")
	require.NoError(t, app.Run(context.Background(), []string{"export", "-o", path}))
	assert.Contains(t, out.String(), "Exported to "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got client.Export
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Ana Souza", got.Profile.FullName)
	require.NotNil(t, got.Health.MedicalNotes)
	assert.Equal(t, "asthma", *got.Health.MedicalNotes)
}

func TestSessionExpiry_PrintsLoginHint(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Code: "UNAUTHORIZED", Message: "unauthorized"})
	})

	app, c, out := newTestApp(t, mux, "")
	require.NoError(t, c.Store().Save(client.Credential{AccessToken: "a", RefreshToken: "r", UserID: "u1"}))

	err := app.Run(context.Background(), []string{"profile"})
	require.ErrorIs(t, err, client.ErrSessionExpired)
	assert.Contains(t, out.String(), "medcardctl login")
	assert.Equal(t, "session expired", Describe(err))
	assert.Equal(t, 1, ExitCode(err))
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, out := newTestApp(t, http.NotFoundHandler(), "")

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.True(t, errors.Is(err, errUsage))
	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, out.String(), "Usage: medcardctl")
}

func TestDescribe_APIError(t *testing.T) {
	err := &client.APIError{Status: http.StatusConflict, Code: "CONFLICT", Message: "email already registered"}
	assert.Equal(t, "email already registered", Describe(err))
}
