// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps the domain failure taxonomy onto status codes and keeps storage details
// out of response bodies.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nc-news/internal/domain/entity"
)

const internalMessage = "internal server error"

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Message writes {"error": msg} with the given status code.
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]string{"error": msg})
}

// SafeError writes err for client errors and a generic message for 5xx,
// logging the sanitized cause.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if code < 500 {
		Error(w, code, err)
		return
	}
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Message(w, code, internalMessage)
}

// DomainError classifies err against the entity taxonomy and writes the response.
func DomainError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := Classify(err)
	if code >= 500 {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
	}
	Message(w, code, msg)
}

// Classify returns the status code and client-facing message for err.
func Classify(err error) (int, string) {
	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Error()
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge, "request body too large"
	}

	var nfErr *entity.NotFoundError
	if errors.As(err, &nfErr) {
		return http.StatusNotFound, nfErr.Error()
	}

	for _, c := range badRequests {
		if errors.Is(err, c) {
			return http.StatusBadRequest, c.Error()
		}
	}

	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, entity.ErrNotFound.Error()
	case errors.Is(err, entity.ErrAlreadyExists):
		return http.StatusConflict, entity.ErrAlreadyExists.Error()
	case errors.Is(err, entity.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, entity.ErrStorageUnavailable.Error()
	}
	return http.StatusInternalServerError, internalMessage
}

var badRequests = []error{
	entity.ErrInvalidAuthor,
	entity.ErrMissingFields,
	entity.ErrUnrecognizedKey,
	entity.ErrInvalidSortColumn,
	entity.ErrInvalidSortOrder,
	entity.ErrInvalidInput,
}
