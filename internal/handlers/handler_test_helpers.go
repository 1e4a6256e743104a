package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

// assertErrorResponse checks the status code, content type, and error message
// of a failed request.
func assertErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if rr.Code != status {
		t.Errorf("expected status %d, got %d", status, rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != message {
		t.Errorf("expected error %q, got %q", message, resp.Error)
	}
}
