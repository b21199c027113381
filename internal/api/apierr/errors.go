package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/services/qrcode"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodePlayerExists     = "PLAYER_EXISTS"
	CodeDuplicateEntry   = "DUPLICATE_ENTRY"
	CodeQRCodeNotFound   = "QRCODE_NOT_FOUND"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Username is already taken"}}
	case errors.Is(err, model.ErrInvalidUsername):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "username is required"}}
	case errors.Is(err, model.ErrDuplicateEntry):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateEntry, "QR code already scanned by this player"}}
	case errors.Is(err, model.ErrQRCodeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeQRCodeNotFound, "QR code not found"}}
	case errors.Is(err, model.ErrInvalidQRCode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "hash is required"}}
	case errors.Is(err, qrcode.ErrEmptyContent):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "content is required"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates an error for unknown routes
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewMethodNotAllowedError creates an error for known routes called with the wrong method
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, "Method not allowed"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
