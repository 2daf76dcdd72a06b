package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boardkit/boardkit/pkg/core/scene"
	apperrors "github.com/boardkit/boardkit/pkg/errors"
	"github.com/boardkit/boardkit/pkg/store"
)

// errorBody is the JSON envelope for error responses.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// writeError maps err to an HTTP status and writes the error envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}

	var body errorBody
	body.Error.Code = string(codeFor(err))
	body.Error.Message = apperrors.UserMessage(err)
	s.writeJSON(w, status, body)
}

// statusFor maps application errors to HTTP status codes. Unknown errors
// are internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, scene.ErrObjectNotFound),
		apperrors.Is(err, apperrors.ErrCodeBoardNotFound),
		apperrors.Is(err, apperrors.ErrCodeObjectNotFound),
		apperrors.Is(err, apperrors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidID),
		errors.Is(err, scene.ErrNotContainer),
		errors.Is(err, scene.ErrReparentIntoSelf),
		errors.Is(err, scene.ErrDuplicateObjectID),
		errors.Is(err, scene.ErrInvalidObjectID),
		apperrors.Is(err, apperrors.ErrCodeInvalidInput),
		apperrors.Is(err, apperrors.ErrCodeInvalidBoard),
		apperrors.Is(err, apperrors.ErrCodeInvalidObject),
		apperrors.Is(err, apperrors.ErrCodeInvalidFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// codeFor extracts a machine-readable code for the error envelope.
func codeFor(err error) apperrors.Code {
	if code := apperrors.GetCode(err); code != "" {
		return code
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperrors.ErrCodeBoardNotFound
	case errors.Is(err, scene.ErrObjectNotFound):
		return apperrors.ErrCodeObjectNotFound
	case errors.Is(err, store.ErrInvalidID):
		return apperrors.ErrCodeInvalidBoard
	case errors.Is(err, scene.ErrNotContainer),
		errors.Is(err, scene.ErrReparentIntoSelf),
		errors.Is(err, scene.ErrDuplicateObjectID),
		errors.Is(err, scene.ErrInvalidObjectID):
		return apperrors.ErrCodeInvalidObject
	default:
		return apperrors.ErrCodeInternal
	}
}
