package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	ErrorResponse(rec, http.StatusBadRequest, "Missing required fields")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("unexpected content type %q", ct)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"success":false,"error":"Missing required fields"}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestJSONResponseOmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()

	JSONResponse(rec, http.StatusOK, Payload{Success: true})

	if body := strings.TrimSpace(rec.Body.String()); body != `{"success":true}` {
		t.Errorf("unexpected body %s", body)
	}
}
