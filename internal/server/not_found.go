package server

import (
	"net/http"

	apperrors "vivopizza/pkg/errors"
)

// fallbackRouter is implemented by the goa muxer's underlying chi router.
type fallbackRouter interface {
	NotFound(h http.HandlerFunc)
	MethodNotAllowed(h http.HandlerFunc)
}

// notFound returns a JSON 404 response for unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	encodeError(r.Context(), w, apperrors.New(apperrors.ErrCodeNotFound, "not found"))
}

// methodNotAllowed returns a JSON 405 response for known routes.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	encodeError(r.Context(), w, apperrors.New(apperrors.ErrCodeMethodNotAllowed, "method not allowed"))
}
