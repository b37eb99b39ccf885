// Package httpserver provides the HTTP server for authcore.
package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nvieira/authcore/internal/core/service"
	"github.com/nvieira/authcore/internal/storage/memory"
	"github.com/nvieira/authcore/internal/telemetry/logger"
	"github.com/nvieira/authcore/internal/telemetry/metric"
)

// newTestRouter wires a full server stack against a fresh store. The
// token TTL is configurable so expiration paths can be exercised.
func newTestRouter(t *testing.T, ttl time.Duration) http.Handler {
	t.Helper()

	store, err := memory.New()
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	creds := service.NewCredentialService(service.CredentialConfig{
		Secret:     []byte("test-signing-secret"),
		TokenTTL:   ttl,
		BcryptCost: bcrypt.MinCost,
	})
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})

	return NewRouter(&RouterConfig{
		Accounts: service.NewAccountService(store, creds, nil),
		Logger:   log,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return body["mensagem"]
}

const signupBody = `{
	"nome": "Maria Silva",
	"email": "a@x.com",
	"senha": "secret",
	"telefones": [{"numero": "987654321", "ddd": "11"}]
}`

// TestFullScenario walks the complete account lifecycle through the
// routed stack: register, conflicting register, failed and successful
// login, and guarded profile fetch.
func TestFullScenario(t *testing.T) {
	router := newTestRouter(t, time.Minute)

	// Register user A.
	rec := doJSON(t, router, http.MethodPost, "/signup", signupBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Same e-mail again conflicts.
	rec = doJSON(t, router, http.MethodPost, "/signup", signupBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate signup status = %d", rec.Code)
	}

	// Wrong password rejects with the shared generic message.
	rec = doJSON(t, router, http.MethodPost, "/signin", `{"email": "a@x.com", "senha": "wrong!"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d", rec.Code)
	}
	if msg := message(t, rec); msg != "Usuário e/ou senha inválidos" {
		t.Errorf("mensagem = %v", msg)
	}

	// Correct password yields a token.
	rec = doJSON(t, router, http.MethodPost, "/signin", `{"email": "a@x.com", "senha": "secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("signin status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var login struct {
		ID    int64  `json:"id"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode signin: %v", err)
	}
	if login.Token == "" {
		t.Fatal("signin returned empty token")
	}

	// Profile with that token resolves to the same user.
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	profileRec := httptest.NewRecorder()
	router.ServeHTTP(profileRec, req)
	if profileRec.Code != http.StatusOK {
		t.Fatalf("profile status = %d, body = %s", profileRec.Code, profileRec.Body.String())
	}
	var profile struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(profileRec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.ID != login.ID {
		t.Errorf("profile ID = %d, want %d", profile.ID, login.ID)
	}
	if strings.Contains(profileRec.Body.String(), "$2a$") {
		t.Error("profile response leaks the password hash")
	}

	// No Authorization header at all.
	rec = doJSON(t, router, http.MethodGet, "/user", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status = %d", rec.Code)
	}
	if msg := message(t, rec); msg != "Não autorizado" {
		t.Errorf("mensagem = %v", msg)
	}
}

func TestExpiredTokenGetsDistinctMessage(t *testing.T) {
	router := newTestRouter(t, -time.Minute)

	doJSON(t, router, http.MethodPost, "/signup", signupBody)
	rec := doJSON(t, router, http.MethodPost, "/signin", `{"email": "a@x.com", "senha": "secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("signin status = %d", rec.Code)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode signin: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	expired := httptest.NewRecorder()
	router.ServeHTTP(expired, req)

	if expired.Code != http.StatusUnauthorized {
		t.Fatalf("expired token status = %d", expired.Code)
	}
	if msg := message(t, expired); msg != "Sessão inválida" {
		t.Errorf("mensagem = %v, expiration must be distinguishable", msg)
	}
}

// TestTokenFromPreviousProcessRejected simulates a restart: a token
// issued against one store instance must not validate against another.
func TestTokenFromPreviousProcessRejected(t *testing.T) {
	old := newTestRouter(t, time.Minute)
	current := newTestRouter(t, time.Minute)

	doJSON(t, old, http.MethodPost, "/signup", signupBody)
	rec := doJSON(t, old, http.MethodPost, "/signin", `{"email": "a@x.com", "senha": "secret"}`)
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode signin: %v", err)
	}

	// Same user registered on the new instance, so only the embedded
	// store identifier differs.
	doJSON(t, current, http.MethodPost, "/signup", signupBody)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	stale := httptest.NewRecorder()
	current.ServeHTTP(stale, req)

	if stale.Code != http.StatusUnauthorized {
		t.Fatalf("stale token status = %d", stale.Code)
	}
	if msg := message(t, stale); msg != "Não autorizado" {
		t.Errorf("mensagem = %v, stale instance must look like any invalid token", msg)
	}
}

func TestSigninUnknownEmailIsBadRequest(t *testing.T) {
	router := newTestRouter(t, time.Minute)

	rec := doJSON(t, router, http.MethodPost, "/signin", `{"email": "nobody@x.com", "senha": "secret"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown email status = %d", rec.Code)
	}
	if msg := message(t, rec); msg != "Usuário e/ou senha inválidos" {
		t.Errorf("mensagem = %v", msg)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, time.Minute)

	rec := doJSON(t, router, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	if rec.Body.String() != "OK!" {
		t.Errorf("health body = %q", rec.Body.String())
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t, time.Minute)

	rec := doJSON(t, router, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	store, err := memory.New()
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	creds := service.NewCredentialService(service.CredentialConfig{
		Secret:     []byte("test-signing-secret"),
		TokenTTL:   time.Minute,
		BcryptCost: bcrypt.MinCost,
	})
	log := logger.New(logger.Config{Level: "error", Output: io.Discard})
	metrics := metric.NewRegistry()

	router := NewRouter(&RouterConfig{
		Accounts: service.NewAccountService(store, creds, metrics),
		Logger:   log,
		Metrics:  metrics,
	})

	doJSON(t, router, http.MethodPost, "/signup", signupBody)

	rec := doJSON(t, router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authcore_users_registered_total") {
		t.Errorf("metrics output missing registration counter:\n%s", rec.Body.String())
	}
}
