package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsSetCodeAndStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Slot"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad"), CodeInvalidInput, http.StatusBadRequest},
		{"forbidden", Forbidden("no"), CodeForbidden, http.StatusForbidden},
		{"conflict", Conflict("busy"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"unavailable", Unavailable("down", nil), CodeUnavailable, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.StatusCode() != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.StatusCode())
			}
		})
	}
}

func TestNotFoundWithIDCarriesDetails(t *testing.T) {
	err := NotFoundWithID("Slot", "42")

	if err.Details["resource"] != "Slot" || err.Details["id"] != "42" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("down", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAsAppErrorWrapsForeignErrors(t *testing.T) {
	appErr := AsAppError(errors.New("plain"))

	if appErr.Code != CodeInternal {
		t.Errorf("expected code %s, got %s", CodeInternal, appErr.Code)
	}

	original := Conflict("busy")
	if got := AsAppError(original); got != original {
		t.Error("expected the original AppError to pass through")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("Slot")) {
		t.Error("expected true for AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("expected false for plain error")
	}
}
