package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminOnlyAcceptsMintedToken(t *testing.T) {
	secret := "secret"
	gate := AdminOnly(secret)(okHandler())

	token, err := MintAdminToken(secret, time.Hour)
	if err != nil {
		t.Fatalf("MintAdminToken err: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	gate.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAdminOnlyRejectsMissingOrBadTokens(t *testing.T) {
	gate := AdminOnly("secret")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	resp := httptest.NewRecorder()
	gate.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	wrong, err := MintAdminToken("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("MintAdminToken err: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/summary", nil)
	req.Header.Set("Authorization", "Bearer "+wrong)
	resp = httptest.NewRecorder()
	gate.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong secret, got %d", resp.Code)
	}
}

func TestAdminOnlyWithoutSecretStaysClosed(t *testing.T) {
	gate := AdminOnly("")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	resp := httptest.NewRecorder()
	gate.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with no secret, got %d", resp.Code)
	}
}
