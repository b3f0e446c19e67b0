package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	apperrors "vivopizza/pkg/errors"
)

const (
	codeNotFound           = "not_found"
	codeMethodNotAllowed   = "method_not_allowed"
	codeInvalidRequestBody = "invalid_request_body"
	codeValidation         = "validation_error"
	codeStorage            = "storage_error"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Detail  string                 `json:"detail,omitempty"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// encodeError maps service errors onto status codes. Caller faults are 4xx;
// store failures are 500 with the cause truncated to 200 characters.
func encodeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := errorBody(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %v", err)
	}
	encode(ctx, w, status, body)
}

func errorBody(err error) (int, errorResponse) {
	if verr, ok := apperrors.AsValidation(err); ok {
		return http.StatusUnprocessableEntity, errorResponse{
			Code:    codeValidation,
			Message: "invalid inquiry",
			Fields:  verr.Fields,
		}
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, errorResponse{
			Code:    codeInvalidRequestBody,
			Message: "request body too large",
		}
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.ErrCodeNotFound:
			return http.StatusNotFound, errorResponse{
				Code:    codeNotFound,
				Message: appErr.Message,
			}
		case apperrors.ErrCodeMethodNotAllowed:
			return http.StatusMethodNotAllowed, errorResponse{
				Code:    codeMethodNotAllowed,
				Message: appErr.Message,
			}
		case apperrors.ErrCodeBadRequest:
			return http.StatusBadRequest, errorResponse{
				Code:    codeInvalidRequestBody,
				Message: appErr.Message,
			}
		case apperrors.ErrCodeStorage:
			return http.StatusInternalServerError, errorResponse{
				Code:    codeStorage,
				Message: appErr.Message,
				Detail:  appErr.Cause(),
			}
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Code:    codeInternalError,
		Message: "internal server error",
	}
}
