package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rappen-dev/rappen/internal/common"
)

type successEnvelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Last-ditch logging; can't return an error now
		slog.Error("failed to encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Success: false, Error: message})
}

// handleError maps core errors to HTTP statuses per the error taxonomy:
// empty imports and unknown categories are client errors, missing records
// are 404s, and storage failures surface as 500s.
func handleError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, common.ErrEmptyImport):
		writeError(w, http.StatusBadRequest, "No valid transactions found in CSV")
	case errors.Is(err, common.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		slog.Error(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
