package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rmncha/health-assistant/backend/internal/model/asha"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	"github.com/rmncha/health-assistant/backend/internal/model/registration"
	"github.com/rmncha/health-assistant/backend/internal/model/scheme"
	"github.com/rmncha/health-assistant/backend/internal/service/assistant"
	chatservice "github.com/rmncha/health-assistant/backend/internal/service/chat"
	registrationservice "github.com/rmncha/health-assistant/backend/internal/service/registration"
)

func newTestRouter(speech bool) (http.Handler, *chatservice.Service) {
	table := locale.MustDefault()
	chatSvc := chatservice.NewService(table, assistant.NewService(table))
	return NewRouter(Dependencies{
		Table:          table,
		Chat:           chatSvc,
		Registrations:  registrationservice.NewService(registration.NewMemoryStore()),
		Schemes:        scheme.NewMemoryStore(scheme.Seed()),
		Workers:        asha.NewMemoryStore(asha.Seed()),
		AllowedOrigins: []string{"*"},
		SpeechEnabled:  speech,
	}), chatSvc
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAPIRoot(t *testing.T) {
	r, _ := newTestRouter(false)

	resp := serve(r, http.MethodGet, "/api", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "RMNCHA Health Assistant API" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestRoutesMounted(t *testing.T) {
	r, _ := newTestRouter(false)

	paths := []string{
		"/api/health-schemes",
		"/api/health-schemes/category?category=child",
		"/api/asha-workers",
		"/api/asha-workers/location?state=delhi",
		"/api/register",
		"/api/chat/history",
		"/api/speech/health",
	}
	for _, path := range paths {
		if resp := serve(r, http.MethodGet, path, ""); resp.Code != http.StatusOK {
			t.Fatalf("GET %s: unexpected status %d", path, resp.Code)
		}
	}

	resp := serve(r, http.MethodPost, "/api/chat/response", `{"message":"my baby needs breastfeeding help","language":"en"}`)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "Mission Indradhanush") {
		t.Fatalf("unexpected chat response %d %s", resp.Code, resp.Body.String())
	}
}

func TestStreamRoute(t *testing.T) {
	r, chatSvc := newTestRouter(false)
	session := chatSvc.Open(locale.Hindi)

	resp := serve(r, http.MethodGet, "/api/chat/sessions/"+session.ID()+"/stream?message=%E0%A4%97%E0%A4%B0%E0%A5%8D%E0%A4%AD", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "event: typing") || !strings.Contains(resp.Body.String(), "event: message") {
		t.Fatalf("unexpected stream body %s", resp.Body.String())
	}

	if resp := serve(r, http.MethodGet, "/api/chat/sessions/missing/stream?message=hi", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", resp.Code)
	}
	if resp := serve(r, http.MethodGet, "/api/chat/sessions/"+session.ID()+"/stream", ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without message, got %d", resp.Code)
	}
}

func TestWebSocketRouteToggle(t *testing.T) {
	disabled, _ := newTestRouter(false)
	if resp := serve(disabled, http.MethodGet, "/api/chat/ws", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with speech disabled, got %d", resp.Code)
	}

	enabled, _ := newTestRouter(true)
	// a plain GET is not an upgrade request
	if resp := serve(enabled, http.MethodGet, "/api/chat/ws", ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-upgrade request, got %d", resp.Code)
	}
}
