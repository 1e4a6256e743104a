package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func applySecurityHeaders(t *testing.T, secure bool) *httptest.ResponseRecorder {
	t.Helper()

	s := NewSecurityHeaders(secure)
	handler := s.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestSecurityHeaders_Basics(t *testing.T) {
	rr := applySecurityHeaders(t, false)

	expected := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, want := range expected {
		if got := rr.Header().Get(header); got != want {
			t.Errorf("%s: expected %q, got %q", header, want, got)
		}
	}

	csp := rr.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "default-src 'self'") {
		t.Errorf("expected restrictive CSP, got %q", csp)
	}
	if !strings.Contains(csp, "img-src 'self' data: blob:") {
		t.Errorf("expected data URI images to be allowed, got %q", csp)
	}
}

func TestSecurityHeaders_HSTSOnlyWhenSecure(t *testing.T) {
	if got := applySecurityHeaders(t, false).Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("expected no HSTS over plain HTTP, got %q", got)
	}

	if got := applySecurityHeaders(t, true).Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("expected HSTS header in secure mode")
	}
}
