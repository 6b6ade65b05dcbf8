package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "customer-support/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "already exists")

	if err.Code != http.StatusConflict || err.StatusCode != http.StatusConflict {
		t.Errorf("unexpected codes: %+v", err)
	}
	if err.Error() != "409: already exists" {
		t.Errorf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var target *pkgErrors.HTTPError
	if !errors.As(wrapped, &target) || target != err {
		t.Error("expected errors.As to unwrap HTTPError")
	}
}
