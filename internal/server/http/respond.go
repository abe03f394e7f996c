package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/errs"
)

// Envelope is the uniform response wrapper returned by every endpoint.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Count     *int   `json:"count,omitempty"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func respondData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

func respondList(w http.ResponseWriter, data any, count int) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

func respondError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, Envelope{Success: false, Message: message, Details: details})
}

// detail extracts the human-readable part after a wrapped sentinel.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(strings.TrimPrefix(err.Error(), sentinel.Error()), ": ")
}

// respondServiceError maps domain errors onto the envelope. notFoundMsg names
// the entity for 404s. Unclassified failures become a bare 500: internal
// detail never reaches the caller.
func respondServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, errs.ErrMissingFields):
		respondError(w, http.StatusBadRequest, constants.MsgRequiredMissing, detail(err, errs.ErrMissingFields))
	case errors.Is(err, errs.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, constants.MsgInvalidData, detail(err, errs.ErrInvalidInput))
	case errors.Is(err, errs.ErrBadReference):
		respondError(w, http.StatusBadRequest, constants.MsgInvalidData, detail(err, errs.ErrBadReference))
	case errors.Is(err, errs.ErrAlreadyExists):
		respondError(w, http.StatusBadRequest, constants.MsgDuplicateEntry, detail(err, errs.ErrAlreadyExists))
	case errors.Is(err, errs.ErrHasDependents):
		respondError(w, http.StatusConflict, constants.MsgHasDependents, detail(err, errs.ErrHasDependents))
	case errors.Is(err, errs.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg, "")
	default:
		respondError(w, http.StatusInternalServerError, constants.MsgServerError, "")
	}
}
