package analytics

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ikonnect/website/backend/internal/engine"
	middlewarePkg "github.com/ikonnect/website/backend/internal/middleware"
	model "github.com/ikonnect/website/backend/internal/model/analytics"
	chatservice "github.com/ikonnect/website/backend/internal/service/chat"
	"github.com/ikonnect/website/backend/internal/store"
)

const testSecret = "test-admin-secret"

func setupRouter() *chi.Mux {
	eventLog := store.New()
	eng := engine.NewLocal(eventLog, chatservice.NewService(eventLog, chatservice.StaticResponder{}))

	r := chi.NewRouter()
	New(eng).RegisterRoutes(r, middlewarePkg.AdminOnly(testSecret))
	return r
}

func ingest(r http.Handler, body map[string]any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/analytics/event", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://example.com/")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestIngestEvent(t *testing.T) {
	r := setupRouter()

	resp := ingest(r, map[string]any{
		"eventType": "page_view",
		"page":      "/pricing",
		"sessionId": "s-1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var event model.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if event.ID == "" {
		t.Fatal("expected a stored event id")
	}
	if event.UserAgent != "test-agent" || event.Referrer != "https://example.com/" {
		t.Fatalf("provenance fields not captured from transport: %+v", event)
	}
	if event.CreatedAt.IsZero() {
		t.Fatal("expected a createdAt timestamp")
	}
}

func TestIngestEventMissingType(t *testing.T) {
	r := setupRouter()

	resp := ingest(r, map[string]any{"page": "/pricing", "sessionId": "s-1"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSummaryRequiresAdminToken(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestSummaryWithAdminToken(t *testing.T) {
	r := setupRouter()

	ingest(r, map[string]any{"eventType": "page_view", "page": "/", "sessionId": "s-1"})
	ingest(r, map[string]any{"eventType": "page_view", "page": "/", "sessionId": "s-2"})

	token, err := middlewarePkg.MintAdminToken(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("MintAdminToken err: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var summary model.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if summary.TotalPageViews != 2 || summary.UniqueVisitors != 2 || summary.BounceRate != 100 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
