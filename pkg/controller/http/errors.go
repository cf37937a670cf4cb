package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/utils/apperr"
)

// statusOf maps an application error to an HTTP status code
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrMilestoneNotFound):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagSnapshotUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the error text shown to users; internal details stay in the logs
func publicMessage(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusNotFound:
		return "not found"
	case http.StatusServiceUnavailable:
		return "the project workbook could not be read, try again shortly"
	default:
		return "internal server error"
	}
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError logs err and writes a JSON error response
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)
	status := statusOf(err)
	writeJSON(w, r, status, map[string]string{
		"error": publicMessage(err, status),
	})
}
