package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      New(http.StatusNotFound, "not_found", "Resource not found"),
			expected: "not_found: Resource not found",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "llm_error",
				Message:    "Failed to iterate with AI",
				Internal:   errors.New("quota exceeded"),
			},
			expected: "llm_error: Failed to iterate with AI (quota exceeded)",
		},
		{
			name:     "empty message",
			err:      New(http.StatusBadRequest, "bad_request", ""),
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCopiesKeepIdentity(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := ErrBadRequest.WithMessage("A mensagem é obrigatória.").WithInternal(cause)

	if !errors.Is(err, ErrBadRequest) {
		t.Error("errors.Is(copy, ErrBadRequest) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(copy, ErrNotFound) = true, want false")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(copy, cause) = false, want true")
	}
	if ErrBadRequest.Message != "Invalid request" {
		t.Errorf("WithMessage mutated the shared error: %q", ErrBadRequest.Message)
	}
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"app error", NewBadRequest("bad input"), http.StatusBadRequest, "bad input"},
		{"wrapped app error", fmt.Errorf("reply: %w", ErrNotFound), http.StatusNotFound, "Resource not found"},
		{"plain error", errors.New("secret provider detail"), http.StatusInternalServerError, "An internal error occurred"},
		{"internal with cause", NewInternal("Failed to iterate with AI", errors.New("boom")), http.StatusInternalServerError, "Failed to iterate with AI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTPError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body["error"] != tt.wantMsg {
				t.Errorf("body[error] = %v, want %q", body["error"], tt.wantMsg)
			}
			if len(body) != 1 {
				t.Errorf("body has %d keys, want only \"error\"", len(body))
			}
		})
	}
}
