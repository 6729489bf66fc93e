package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")

	t.Run("wraps cause", func(t *testing.T) {
		err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if err.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
			t.Fatalf("unexpected message: %s", err.Error())
		}
		body := err.ToHTTPError()
		if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("simple", func(t *testing.T) {
		err := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
		if err.Unwrap() != nil || err.HTTPStatus != http.StatusNotFound {
			t.Fatalf("unexpected error: %+v", err)
		}
		if err.Error() != "NOT_FOUND: Not found" {
			t.Fatalf("unexpected message: %s", err.Error())
		}
	})
}
