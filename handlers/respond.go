package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFieldErrors reports a per-field validation breakdown with a
// 400, in the shape {"errors": {"field": ["message", ...]}}.
func writeFieldErrors(w http.ResponseWriter, fieldErrs map[string][]string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

const (
	msgUnauthorized  = "Unauthorized access"
	msgNotFound      = "The requested resource could not be found"
	msgInternalError = "Internal Server Error"
	msgInvalidBody   = "Invalid request body"
)
