package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/insighthub/landing/internal/models"
	"github.com/insighthub/landing/internal/shared"
	"golang.org/x/time/rate"
)

// memoryStore is an in-memory feedback repository for handler tests.
type memoryStore struct {
	entries   []*models.Feedback
	createErr error
}

func (s *memoryStore) Create(entry *models.Feedback) error {
	if s.createErr != nil {
		return s.createErr
	}
	entry.SetID(shared.GenerateID())
	entry.SetSequence(len(s.entries) + 1)
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memoryStore) Get(id string) (*models.Feedback, error) {
	return nil, errors.New("not found")
}

func (s *memoryStore) Update(entry *models.Feedback) error { return nil }
func (s *memoryStore) Delete(id string) error              { return nil }
func (s *memoryStore) List(criteria map[string]any) ([]*models.Feedback, error) {
	return s.entries, nil
}

func postFeedback(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestFeedbackHandler(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	t.Run("valid submission", func(t *testing.T) {
		store := &memoryStore{}
		handler := NewFeedbackHandler(store, logger)

		rec := postFeedback(t, handler, `{"name":"Asha","email":"asha@example.com","message":"More chart types please"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp FeedbackResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ID == "" || resp.Sequence != 1 {
			t.Errorf("unexpected response: %+v", resp)
		}

		if len(store.entries) != 1 {
			t.Fatalf("expected 1 stored entry, got %d", len(store.entries))
		}
		if store.entries[0].Source() != models.SourceWeb {
			t.Errorf("expected web source, got %s", store.entries[0].Source())
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		handler := NewFeedbackHandler(&memoryStore{}, logger)
		rec := postFeedback(t, handler, `{"name":`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		store := &memoryStore{}
		handler := NewFeedbackHandler(store, logger)
		rec := postFeedback(t, handler, `{"name":"","message":""}`)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if len(store.entries) != 0 {
			t.Errorf("invalid entries must not be stored, got %d", len(store.entries))
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		store := &memoryStore{createErr: errors.New("disk full")}
		handler := NewFeedbackHandler(store, logger)
		rec := postFeedback(t, handler, `{"name":"Asha","message":"hello"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "disk full") {
			t.Error("internal error details should not leak to the client")
		}
	})

	t.Run("GET rejected", func(t *testing.T) {
		handler := NewFeedbackHandler(&memoryStore{}, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/feedback", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	(&HealthHandler{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0), 2)
	wrapped := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := []int{}
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests should pass the burst, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %v", codes)
	}
}

func TestBasicRouter(t *testing.T) {
	t.Run("method filtering", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/only-get", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodPost, "/only-get", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405 for wrong method, got %d", rec.Code)
		}
	})

	t.Run("middleware order", func(t *testing.T) {
		var order []string
		mk := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mk("first"), mk("second"))
		router.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("expected first,second execution order, got %v", order)
		}
	})

	t.Run("handler routes registration", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(&HealthHandler{})

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 from registered handler, got %d", rec.Code)
		}
	})
}
