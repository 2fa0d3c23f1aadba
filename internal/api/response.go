package api

import (
	"encoding/json"
	"net/http"
)

// envelope is the standard JSON response structure.
type envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *errorDetail   `json:"error,omitempty"`
}

// errorDetail contains error information.
type errorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondData renders a success envelope.
func respondData(w http.ResponseWriter, data any, meta map[string]any) {
	writeJSON(w, http.StatusOK, envelope{Data: data, Meta: meta})
}

// respondError renders an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{Error: &errorDetail{Code: code, Message: message}})
}
