// Package respond writes the JSON envelopes shared by every API endpoint.
// Success payloads always carry success=true; failures use a fixed error
// envelope with the HTTP status repeated in the body.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the standardized failure body.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the failure envelope for the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorEnvelope{Success: false, Error: status, Message: message})
}

// BadRequest writes the canonical 400 envelope.
func BadRequest(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, "bad request")
}

// NotFound writes the canonical 404 envelope.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "resource not found")
}

// MethodNotAllowed writes the canonical 405 envelope.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "method not allowed")
}

// Unprocessable writes the canonical 422 envelope.
func Unprocessable(w http.ResponseWriter) {
	Error(w, http.StatusUnprocessableEntity, "unprocessable")
}
