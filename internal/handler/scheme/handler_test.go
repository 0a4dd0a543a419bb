package scheme

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/scheme"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func setup() (*chi.Mux, []scheme.Scheme) {
	seed := scheme.Seed()
	r := chi.NewRouter()
	New(scheme.NewMemoryStore(seed)).RegisterRoutes(r)
	return r, seed
}

func get[T any](t *testing.T, r http.Handler, path string) (int, envelope[T]) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var out envelope[T]
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return resp.Code, out
}

func TestListSchemes(t *testing.T) {
	r, seed := setup()

	code, body := get[[]scheme.Scheme](t, r, "/health-schemes")
	if code != http.StatusOK || !body.Success {
		t.Fatalf("unexpected response %d %+v", code, body)
	}
	if len(body.Data) != len(seed) {
		t.Fatalf("expected %d schemes, got %d", len(seed), len(body.Data))
	}
}

func TestSchemesByCategory(t *testing.T) {
	r, _ := setup()

	code, body := get[[]scheme.Scheme](t, r, "/health-schemes/category?category=MATERNAL")
	if code != http.StatusOK {
		t.Fatalf("unexpected status %d", code)
	}
	if len(body.Data) == 0 {
		t.Fatal("expected maternal schemes")
	}
	for _, item := range body.Data {
		if item.Category != scheme.CategoryMaternal {
			t.Fatalf("unexpected category %q", item.Category)
		}
	}

	_, none := get[[]scheme.Scheme](t, r, "/health-schemes/category?category=dental")
	if none.Data == nil || len(none.Data) != 0 {
		t.Fatalf("expected empty list, got %+v", none.Data)
	}
}

func TestGetScheme(t *testing.T) {
	r, seed := setup()

	code, body := get[scheme.Scheme](t, r, "/health-schemes/"+seed[0].ID)
	if code != http.StatusOK || body.Data.Name != seed[0].Name {
		t.Fatalf("unexpected response %d %+v", code, body)
	}

	code, missing := get[scheme.Scheme](t, r, "/health-schemes/unknown")
	if code != http.StatusNotFound || missing.Success || missing.Message != "Health scheme not found" {
		t.Fatalf("unexpected not-found response %d %+v", code, missing)
	}
}
