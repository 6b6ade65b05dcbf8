package http

import (
	"errors"
	"net/http"

	"customer-support/internal/conversation"
	pkgErrors "customer-support/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates conversation errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, conversation.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	case errors.Is(err, conversation.ErrEmptySessionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	case errors.Is(err, conversation.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
