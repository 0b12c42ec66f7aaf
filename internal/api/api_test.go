package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rryowa/medcard/internal/client"
	"github.com/rryowa/medcard/internal/controller"
	"github.com/rryowa/medcard/internal/models"
	"github.com/rryowa/medcard/internal/service"
	"github.com/rryowa/medcard/internal/storage/memory"
	redisstorage "github.com/rryowa/medcard/internal/storage/redis"
	"github.com/rryowa/medcard/internal/util"
)

const testPassword = "correct horse"

func newTestServer(t *testing.T, viewLimit int) *httptest.Server {
	t.Helper()
	return newTestServerWithConfig(t, viewLimit, &util.ServerConfig{})
}

func newTestServerWithConfig(t *testing.T, viewLimit int, sc *util.ServerConfig) *httptest.Server {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zap.NewNop().Sugar()
	store := memory.NewStorage(log)
	tokens := service.NewTokenService(util.TokenConfig{
		JwtSecret:  "test-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, redisstorage.NewTokenStorage(rdb))
	limiter := redisstorage.NewRateLimiter(rdb, viewLimit, time.Minute, time.Minute)

	ctrl := controller.NewController(
		log,
		service.NewAuthService(store, tokens, log),
		service.NewRecordService(store, log),
		service.NewEmergencyService(store, nil, log),
	)

	a := NewAPI(ctrl, log, sc, tokens, limiter)
	require.NoError(t, a.Setup())

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func registerClient(t *testing.T, srv *httptest.Server, email string) *client.Client {
	t.Helper()
	c := client.New(srv.URL)
	_, err := c.Auth.Register(context.Background(), models.RegisterRequest{
		Email:    email,
		Password: testPassword,
		FullName: "Ana Souza",
	})
	require.NoError(t, err)
	return c
}

func getJSON(t *testing.T, url, bearer string) (int, models.ErrorResponse, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	var body models.ErrorResponse
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body, string(raw)
}

func ptr[T any](v T) *T { return &v }

func TestProtectedRoutesRequireBearer(t *testing.T) {
	srv := newTestServer(t, 10)

	status, body, _ := getJSON(t, srv.URL+"/me/profile", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body.Code)

	status, _, _ = getJSON(t, srv.URL+"/me/profile", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestEmergencyView_DisclosesWhitelistOnly(t *testing.T) {
	srv := newTestServer(t, 10)
	owner := registerClient(t, srv, "ana@example.com")
	ctx := context.Background()

	_, err := owner.Profile.Update(ctx, models.ProfilePatch{Phone: ptr("+55 11 5555-0000"), Workplace: ptr("Hospital Central")})
	require.NoError(t, err)
	_, err = owner.Health.Update(ctx, models.HealthPatch{BloodType: ptr(models.BloodTypeOPos), MedicalNotes: ptr("private history")})
	require.NoError(t, err)
	_, err = owner.Allergies.Create(ctx, models.CreateAllergyRequest{Name: "Penicillin", Severity: models.SeverityHigh, Notes: "private rash"})
	require.NoError(t, err)
	_, err = owner.Medications.Create(ctx, models.CreateMedicationRequest{Name: "Insulin", Dosage: "10u", Frequency: "daily", Notes: "private dose notes"})
	require.NoError(t, err)
	_, err = owner.EmergencyContacts.Create(ctx, models.CreateEmergencyContactRequest{Name: "Bia", Phone: "+55 11 4444", Priority: 2})
	require.NoError(t, err)
	_, err = owner.EmergencyContacts.Create(ctx, models.CreateEmergencyContactRequest{Name: "Caio", Phone: "+55 11 3333", Priority: 1})
	require.NoError(t, err)

	tok, err := owner.EmergencyTokens.Get(ctx)
	require.NoError(t, err)
	require.True(t, tok.Active)

	anon := client.New(srv.URL)
	d, err := anon.PublicView.Get(ctx, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", d.Name)
	assert.Equal(t, models.BloodTypeOPos, d.BloodType)
	require.Len(t, d.Allergies, 1)
	assert.Equal(t, models.SeverityHigh, d.Allergies[0].Severity)
	require.Len(t, d.EmergencyContacts, 2)
	assert.Equal(t, "Caio", d.EmergencyContacts[0].Name)

	_, _, raw := getJSON(t, srv.URL+"/emergency/"+tok.Token, "")
	assert.NotContains(t, raw, "private")
	assert.NotContains(t, raw, "Hospital Central")
	assert.NotContains(t, raw, "ana@example.com")
}

func TestEmergencyView_RegenerateRevokesOldToken(t *testing.T) {
	srv := newTestServer(t, 10)
	owner := registerClient(t, srv, "ana@example.com")
	ctx := context.Background()

	first, err := owner.EmergencyTokens.Get(ctx)
	require.NoError(t, err)
	again, err := owner.EmergencyTokens.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Token, again.Token)

	next, err := owner.EmergencyTokens.Regenerate(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, next.Token)

	anon := client.New(srv.URL)
	_, err = anon.PublicView.Get(ctx, first.Token)
	require.ErrorIs(t, err, client.ErrEmergencyTokenInvalid)
	_, err = anon.PublicView.Get(ctx, next.Token)
	require.NoError(t, err)
}

func TestEmergencyView_UnknownAndMalformedLookAlike(t *testing.T) {
	srv := newTestServer(t, 10)

	unknown := strings.Repeat("A", 43)
	for _, token := range []string{unknown, "short"} {
		status, body, _ := getJSON(t, srv.URL+"/emergency/"+token, "")
		assert.Equal(t, http.StatusNotFound, status, token)
		assert.Equal(t, "NOT_FOUND", body.Code)
		assert.Equal(t, "invalid or expired token", body.Message)
	}
}

func TestEmergencyView_RateLimited(t *testing.T) {
	srv := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		status, _, _ := getJSON(t, srv.URL+"/emergency/whatever", "")
		require.Equal(t, http.StatusNotFound, status)
	}
	status, body, _ := getJSON(t, srv.URL+"/emergency/whatever", "")
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "TOO_MANY_REQUESTS", body.Code)

	// owner routes are not limited
	status, _, _ = getJSON(t, srv.URL+"/ping", "")
	assert.Equal(t, http.StatusOK, status)
}

func viewFrom(t *testing.T, url, forwardedFor string) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	req.Header.Set("X-Forwarded-For", forwardedFor)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}

func TestEmergencyView_ForwardedForDoesNotBypassLimit(t *testing.T) {
	srv := newTestServer(t, 2)

	statuses := make([]int, 0, 10)
	for i := 1; i <= 10; i++ {
		statuses = append(statuses, viewFrom(t, srv.URL+"/emergency/whatever", fmt.Sprintf("10.0.0.%d", i)))
	}
	assert.Equal(t, []int{http.StatusNotFound, http.StatusNotFound}, statuses[:2])
	for _, status := range statuses[2:] {
		assert.Equal(t, http.StatusTooManyRequests, status)
	}
}

func TestEmergencyView_TrustedProxyForwardsClientIP(t *testing.T) {
	srv := newTestServerWithConfig(t, 1, &util.ServerConfig{TrustedProxies: []string{"127.0.0.0/8", "::1/128"}})

	assert.Equal(t, http.StatusNotFound, viewFrom(t, srv.URL+"/emergency/whatever", "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, viewFrom(t, srv.URL+"/emergency/whatever", "203.0.113.1"))
	// another client behind the same proxy has its own budget
	assert.Equal(t, http.StatusNotFound, viewFrom(t, srv.URL+"/emergency/whatever", "203.0.113.2"))
	// the proxy only vouches for the hop it appended
	assert.Equal(t, http.StatusTooManyRequests, viewFrom(t, srv.URL+"/emergency/whatever", "198.51.100.7, 203.0.113.2"))
}

func TestClient_RefreshesRejectedAccessToken(t *testing.T) {
	srv := newTestServer(t, 10)
	c := registerClient(t, srv, "ana@example.com")

	cred, ok := c.Store().Load()
	require.True(t, ok)
	stale := cred
	stale.AccessToken = "garbage"
	require.NoError(t, c.Store().Save(stale))

	p, err := c.Profile.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", p.FullName)

	rotated, ok := c.Store().Load()
	require.True(t, ok)
	assert.NotEqual(t, cred.RefreshToken, rotated.RefreshToken)

	// the consumed refresh token is single use
	other := client.New(srv.URL)
	require.NoError(t, other.Store().Save(stale))
	_, err = other.Profile.Get(context.Background())
	require.ErrorIs(t, err, client.ErrSessionExpired)
}

func TestLogout_RevokesSession(t *testing.T) {
	srv := newTestServer(t, 10)
	c := registerClient(t, srv, "ana@example.com")
	ctx := context.Background()

	cred, _ := c.Store().Load()
	require.NoError(t, c.Auth.Logout(ctx))

	status, _, _ := getJSON(t, srv.URL+"/me/profile", cred.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, status)

	_, err := c.Profile.Get(ctx)
	require.ErrorIs(t, err, client.ErrSessionExpired)
}

func TestLogin_WrongPasswordIsNotSessionExpiry(t *testing.T) {
	srv := newTestServer(t, 10)
	registerClient(t, srv, "ana@example.com")

	c := client.New(srv.URL)
	_, err := c.Auth.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "wrong password"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	srv := newTestServer(t, 10)
	registerClient(t, srv, "ana@example.com")

	c := client.New(srv.URL)
	_, err := c.Auth.Register(context.Background(), models.RegisterRequest{Email: "ANA@example.com", Password: testPassword})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestRecords_ValidationAndNotFound(t *testing.T) {
	srv := newTestServer(t, 10)
	c := registerClient(t, srv, "ana@example.com")
	ctx := context.Background()

	_, err := c.Allergies.Create(ctx, models.CreateAllergyRequest{Name: "Dust", Severity: "EXTREME"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	err = c.Allergies.Delete(ctx, "does-not-exist")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	created, err := c.Allergies.Create(ctx, models.CreateAllergyRequest{Name: "Dust", Notes: "sneezing"})
	require.NoError(t, err)

	list, err := c.Allergies.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Notes)

	list, err = c.Allergies.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "sneezing", list[0].Notes)

	require.NoError(t, c.Allergies.Delete(ctx, created.ID))
	list, err = c.Allergies.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, list)
}
