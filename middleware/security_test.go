package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTimeoutMiddlewareInvalidEnvFallsBack(t *testing.T) {
	for _, val := range []string{"not-a-number", "0", "-5"} {
		t.Setenv("REQ_TIMEOUT_SEC", val)
		h := TimeoutMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Err() != nil {
				t.Fatalf("REQ_TIMEOUT_SEC=%q: context already expired", val)
			}
			deadline, ok := r.Context().Deadline()
			if !ok {
				t.Fatalf("REQ_TIMEOUT_SEC=%q: expected a deadline", val)
			}
			if time.Until(deadline) < 5*time.Second {
				t.Fatalf("REQ_TIMEOUT_SEC=%q: deadline too close: %s", val, time.Until(deadline))
			}
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "http://example.local/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("REQ_TIMEOUT_SEC=%q: expected 200, got %d", val, rec.Code)
		}
	}
}

func TestTimeoutMiddlewareHonorsConfiguredValue(t *testing.T) {
	t.Setenv("REQ_TIMEOUT_SEC", "30")
	h := TimeoutMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok := r.Context().Deadline()
		if !ok {
			t.Fatal("expected a deadline")
		}
		if until := time.Until(deadline); until < 25*time.Second || until > 30*time.Second {
			t.Fatalf("deadline outside expected window: %s", until)
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "http://example.local/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
