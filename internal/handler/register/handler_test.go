package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	model "github.com/rmncha/health-assistant/backend/internal/model/registration"
	registrationService "github.com/rmncha/health-assistant/backend/internal/service/registration"
)

type failingStore struct {
	model.Store
}

func (failingStore) Save(context.Context, model.Registration) error {
	return errors.New("disk full")
}

type response[T any] struct {
	Success bool                             `json:"success"`
	Message string                           `json:"message"`
	Data    T                                `json:"data"`
	Errors  []registrationService.FieldError `json:"errors"`
}

func setup(store model.Store) *chi.Mux {
	r := chi.NewRouter()
	New(registrationService.NewService(store), locale.MustDefault()).RegisterRoutes(r)
	return r
}

func form() map[string]any {
	return map[string]any{
		"name":              "Sunita Devi",
		"age":               "24",
		"phone":             "9876543210",
		"address":           "12 Station Road",
		"district":          "Patna",
		"state":             "Bihar",
		"conceiveDate":      "2026-05-01",
		"preferredLanguage": "Hindi",
	}
}

func send[T any](t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, response[T]) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var out response[T]
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, resp.Body.String())
	}
	return resp, out
}

func TestRegisterCreatesRecord(t *testing.T) {
	r := setup(model.NewMemoryStore())

	resp, body := send[model.Registration](t, r, http.MethodPost, "/register", form())
	if resp.Code != http.StatusCreated || !body.Success {
		t.Fatalf("unexpected response %d %+v", resp.Code, body)
	}
	if body.Message != "पंजीकरण सफलतापूर्वक पूरा हुआ" {
		t.Fatalf("expected hindi success message, got %q", body.Message)
	}
	if body.Data.ID == "" || body.Data.Age != 24 {
		t.Fatalf("unexpected record %+v", body.Data)
	}

	resp, fetched := send[model.Registration](t, r, http.MethodGet, "/register/"+body.Data.ID, nil)
	if resp.Code != http.StatusOK || fetched.Data.Name != "Sunita Devi" {
		t.Fatalf("unexpected lookup %d %+v", resp.Code, fetched)
	}
}

func TestRegisterEnglishMessage(t *testing.T) {
	r := setup(model.NewMemoryStore())
	payload := form()
	payload["preferredLanguage"] = "English"

	_, body := send[model.Registration](t, r, http.MethodPost, "/register", payload)
	if body.Message != "Registration successfully completed" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestRegisterValidationErrors(t *testing.T) {
	r := setup(model.NewMemoryStore())
	payload := form()
	payload["age"] = 16
	payload["phone"] = "123"
	payload["preferredLanguage"] = "English"

	resp, body := send[model.Registration](t, r, http.MethodPost, "/register", payload)
	if resp.Code != http.StatusBadRequest || body.Success {
		t.Fatalf("unexpected response %d %+v", resp.Code, body)
	}

	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	if !fields["age"] || !fields["phone"] || len(fields) != 2 {
		t.Fatalf("unexpected field errors %+v", body.Errors)
	}
}

func TestRegisterStoreFailure(t *testing.T) {
	r := setup(failingStore{})

	resp, body := send[model.Registration](t, r, http.MethodPost, "/register", form())
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if body.Message != "पंजीकरण के दौरान एक त्रुटि हुई" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestGetUnknownRegistration(t *testing.T) {
	r := setup(model.NewMemoryStore())

	resp, body := send[model.Registration](t, r, http.MethodGet, "/register/missing", nil)
	if resp.Code != http.StatusNotFound || body.Message != "Registration not found" {
		t.Fatalf("unexpected response %d %+v", resp.Code, body)
	}
}

func TestListRegistrations(t *testing.T) {
	r := setup(model.NewMemoryStore())
	send[model.Registration](t, r, http.MethodPost, "/register", form())

	resp, list := send[[]model.Registration](t, r, http.MethodGet, "/register", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if len(list.Data) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(list.Data))
	}
}
