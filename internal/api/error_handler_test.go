package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandlerDomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrAlreadyRegistered, http.StatusConflict},
		{domain.ErrBookUnavailable, http.StatusConflict},
		{domain.ErrAppointmentTaken, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrMissingToken, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotBorrower, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrEventNotFound, http.StatusNotFound},
		{domain.ErrNotRegistered, http.StatusNotFound},
		{domain.ErrBookNotFound, http.StatusNotFound},
		{domain.ErrDoctorNotFound, http.StatusNotFound},
		{domain.ErrAppointmentNotFound, http.StatusNotFound},
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		code, msg := handleError(t, tc.err)
		if code != tc.code {
			t.Errorf("%v: got status %d, want %d", tc.err, code, tc.code)
		}
		if msg != tc.err.Error() {
			t.Errorf("%v: got message %q, want %q", tc.err, msg, tc.err.Error())
		}
	}
}

func TestErrorHandlerWrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrEmailTaken)

	code, _ := handleError(t, wrapped)
	if code != http.StatusConflict {
		t.Fatalf("got status %d, want %d", code, http.StatusConflict)
	}
}

func TestErrorHandlerEchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", code)
	}
	if msg != "Not Found" {
		t.Fatalf("got message %q, want Not Found", msg)
	}
}

func TestErrorHandlerUnexpectedErrorIsOpaque(t *testing.T) {
	cause := errors.New("mongo: connection reset by peer")

	code, msg := handleError(t, cause)
	if code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500", code)
	}
	if strings.Contains(msg, "mongo") {
		t.Fatalf("internal detail leaked to client: %q", msg)
	}
}
