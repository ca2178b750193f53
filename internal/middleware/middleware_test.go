package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORS_AnyOrigin(t *testing.T) {
	h := CORS([]string{"*"})(okHandler)

	req := httptest.NewRequest("GET", "/projects", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin: got %q, want *", got)
	}
}

func TestCORS_ListedOriginAndPreflight(t *testing.T) {
	h := CORS([]string{"https://a.example"})(okHandler)

	req := httptest.NewRequest("OPTIONS", "/projects", nil)
	req.Header.Set("Origin", "https://a.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("preflight status: got %d, want 204", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://a.example" {
		t.Errorf("allow origin: got %q", got)
	}

	req = httptest.NewRequest("GET", "/projects", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin should get no CORS headers, got %q", got)
	}
}

func TestMaxBytes(t *testing.T) {
	var readErr error
	h := MaxBytes(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/login", strings.NewReader("too long")))
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("declared length: got %d, want 413", rr.Code)
	}

	req := httptest.NewRequest("POST", "/login", io.NopCloser(strings.NewReader("too long")))
	req.ContentLength = -1
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !IsBodyTooLarge(readErr) {
		t.Errorf("expected a MaxBytesError, got %v", readErr)
	}
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(zaptest.NewLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Errorf("body: got %q", rr.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	SecurityHeaders(true)(okHandler).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing nosniff")
	}
	if rr.Header().Get("Strict-Transport-Security") == "" {
		t.Error("missing HSTS")
	}
}

func TestRequestLog_PassesThrough(t *testing.T) {
	h := RequestLog(zaptest.NewLogger(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/projects", nil))
	if rr.Code != http.StatusCreated || rr.Body.String() != "ok" {
		t.Errorf("unexpected response: %d %q", rr.Code, rr.Body.String())
	}
}
