package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tubestudy/tracker/internal/domain"
)

const (
	msgNotFound = "resource not found"
	msgInternal = "internal server error"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	Path      string `json:"path,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
}

// errorWriter maps service errors onto ErrorResponse replies. Details of
// unexpected errors are only exposed in debug mode.
type errorWriter struct {
	debug bool
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, invalidMessage(err)))
	case errors.Is(err, domain.ErrNotFound):
		writeNotFound(w, r)
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		resp := newErrorResponse(http.StatusInternalServerError, msgInternal)
		resp.Error = errorCategory(err)
		if e.debug {
			resp.Details = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	resp := newErrorResponse(http.StatusNotFound, msgNotFound)
	resp.Path = r.URL.Path
	writeJSON(w, http.StatusNotFound, resp)
}

// HandleNotFound is the catch-all for unmatched routes.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w, r)
}

func newErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{Status: status, Message: message, Timestamp: time.Now().UnixMilli()}
}

// invalidMessage turns "...: invalid input: reason" into "invalid request: reason".
func invalidMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrInvalidInput.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return "invalid request: " + msg[i+len(marker):]
	}
	return "invalid request"
}

// errorCategory names the type of the innermost wrapped error.
func errorCategory(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}
