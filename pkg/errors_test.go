package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message %q", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Not found" || simple.StatusOrDefault() != http.StatusNotFound {
		t.Fatalf("unexpected simple error %v", simple)
	}
	if (&AppError{}).StatusOrDefault() != http.StatusInternalServerError {
		t.Fatalf("expected 500 default")
	}
}
