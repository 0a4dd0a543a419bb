package speech

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	"github.com/rmncha/health-assistant/backend/internal/service/assistant"
	chatservice "github.com/rmncha/health-assistant/backend/internal/service/chat"
	speechsvc "github.com/rmncha/health-assistant/backend/internal/service/speech"
)

type utteranceEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    speechsvc.Utterance `json:"data"`
}

func setupRouter() (*chi.Mux, *chatservice.Service) {
	table := locale.MustDefault()
	chatSvc := chatservice.NewService(table, assistant.NewService(table))
	r := chi.NewRouter()
	New(chatSvc, true).RegisterRoutes(r)
	return r, chatSvc
}

func post(t *testing.T, r http.Handler, path string, body any) (*httptest.ResponseRecorder, utteranceEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var out utteranceEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v (%s)", err, resp.Body.String())
	}
	return resp, out
}

func TestSynthesizeUsesLanguageVoice(t *testing.T) {
	r, _ := setupRouter()

	resp, body := post(t, r, "/speech/synthesize", map[string]string{"text": "नमस्ते", "language": "hi"})
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if body.Data.Voice != "hi-IN" || body.Data.Language != locale.Hindi || body.Data.Text != "नमस्ते" {
		t.Fatalf("unexpected utterance %+v", body.Data)
	}
}

func TestSynthesizeRequiresText(t *testing.T) {
	r, _ := setupRouter()

	resp, body := post(t, r, "/speech/synthesize", map[string]string{"text": " "})
	if resp.Code != http.StatusBadRequest || body.Success {
		t.Fatalf("unexpected response %d %+v", resp.Code, body)
	}
}

func TestSynthesizeWithSessionSpeaksLastReply(t *testing.T) {
	r, chatSvc := setupRouter()
	session := chatSvc.Open(locale.English)

	resp, body := post(t, r, "/speech/synthesize/"+session.ID(), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if body.Data.Text != locale.GreetingEnglish || body.Data.Voice != "en-US" {
		t.Fatalf("unexpected utterance %+v", body.Data)
	}
}

func TestSynthesizeWithUnknownSession(t *testing.T) {
	r, _ := setupRouter()

	resp, _ := post(t, r, "/speech/synthesize/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHealthListsVoices(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/speech/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var body struct {
		Status string `json:"status"`
		Bridge bool   `json:"bridge"`
		Voices []struct {
			Language string `json:"language"`
			Voice    string `json:"voice"`
		} `json:"voices"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "healthy" || !body.Bridge || len(body.Voices) != 2 {
		t.Fatalf("unexpected health %+v", body)
	}
}
