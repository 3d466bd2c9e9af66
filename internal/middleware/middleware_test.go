package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_Generates(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("Expected generated UUID, got %q", seen)
	}
	if rr.Header().Get(RequestIDHeader) != seen {
		t.Errorf("Expected response header to echo %q", seen)
	}
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	called := false
	h := RequestID(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("Expected incoming request ID to be kept, got %q", rr.Header().Get(RequestIDHeader))
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS("https://dentalspace.pro")(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://dentalspace.pro")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rr.Code)
	}
	if called {
		t.Error("Expected preflight to stop at the middleware")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://dentalspace.pro" {
		t.Errorf("Unexpected allow-origin %q", got)
	}
}

func TestCORS_PassesThrough(t *testing.T) {
	called := false
	h := CORS("*")(okHandler(&called))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/chat", nil))

	if !called {
		t.Error("Expected next handler to run")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Unexpected allow-origin %q", got)
	}
}
