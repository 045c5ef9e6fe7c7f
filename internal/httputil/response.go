package httputil

import (
	"encoding/json"
	"net/http"
)

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

// FieldErrorBody carries per-field validation detail alongside the
// human-readable summary in Error.
type FieldErrorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Error: message})
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, MessageBody{Message: message})
}

// WriteFieldError reports a validation failure on a single field.
func WriteFieldError(w http.ResponseWriter, status int, field, message string) {
	WriteJSON(w, status, FieldErrorBody{
		Error:  message,
		Fields: map[string][]string{field: {message}},
	})
}
