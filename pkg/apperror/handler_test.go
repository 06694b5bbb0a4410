package apperror

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	return serveWithLogger(t, slog.Default(), method, err)
}

func serveWithLogger(t *testing.T, log *slog.Logger, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := HTTPErrorHandler(log)

	req := httptest.NewRequest(method, "/api/chat", nil)
	rec := httptest.NewRecorder()
	handler(err, e.NewContext(req, rec))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return resp
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec := serve(t, http.MethodPost, NewBadRequest("invalid input"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decode(t, rec)["error"]; got != "invalid input" {
		t.Errorf("error = %v, want 'invalid input'", got)
	}
}

func TestHTTPErrorHandler_InternalNotLeaked(t *testing.T) {
	err := NewInternal("Failed to iterate with AI", errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED"))
	rec := serve(t, http.MethodPost, err)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	resp := decode(t, rec)
	if resp["error"] != "Failed to iterate with AI" {
		t.Errorf("error = %v", resp["error"])
	}
	if body := rec.Body.String(); strings.Contains(body, "RESOURCE_EXHAUSTED") {
		t.Errorf("response leaked internal error: %s", body)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	tests := []struct {
		name    string
		err     *echo.HTTPError
		status  int
		message string
	}{
		{"string message", echo.NewHTTPError(http.StatusNotFound, "resource not found"), http.StatusNotFound, "resource not found"},
		{"default message", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"non string message", echo.NewHTTPError(http.StatusBadRequest, map[string]string{"k": "v"}), http.StatusBadRequest, "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodGet, tt.err)
			if rec.Code != tt.status {
				t.Errorf("Status = %d, want %d", rec.Code, tt.status)
			}
			if got := decode(t, rec)["error"]; got != tt.message {
				t.Errorf("error = %v, want %q", got, tt.message)
			}
		})
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec := serve(t, http.MethodGet, errors.New("connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if got := decode(t, rec)["error"]; got != "An internal error occurred" {
		t.Errorf("error = %v", got)
	}
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	rec := serve(t, http.MethodHead, ErrNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD response body = %q, want empty", rec.Body.String())
	}
}

func TestHTTPErrorHandler_Logging(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"internal cause logged upstream", NewInternal("Failed to iterate with AI", errors.New("quota")), false},
		{"bare error", errors.New("boom"), true},
		{"app error without cause", ErrInternal, true},
		{"client error", NewBadRequest("Message is required."), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			serveWithLogger(t, slog.New(slog.NewTextHandler(&buf, nil)), http.MethodPost, tt.err)

			if got := strings.Contains(buf.String(), "level=ERROR"); got != tt.wantLog {
				t.Errorf("logged = %v, want %v (%s)", got, tt.wantLog, buf.String())
			}
		})
	}
}
