package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

type settingsPayload struct {
	UserFullName string `json:"userFullName"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	name, err := s.store.GetUserFullName(r.Context())
	if err != nil {
		handleError(w, err, "Failed to fetch settings")
		return
	}
	writeSuccess(w, http.StatusOK, settingsPayload{UserFullName: name})
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "userFullName must be a string")
		return
	}

	name := strings.TrimSpace(body.UserFullName)
	if err := s.store.SetUserFullName(r.Context(), name); err != nil {
		handleError(w, err, "Failed to update settings")
		return
	}

	writeJSON(w, http.StatusOK, successEnvelope{
		Success: true,
		Message: "Settings updated successfully",
		Data:    settingsPayload{UserFullName: name},
	})
}
