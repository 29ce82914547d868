package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error  APIError          `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorResponse{Error: APIError{Code: code, Message: message}})
}

// FieldErrors reports per-field validation failures with 422.
func FieldErrors(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:  APIError{Code: "VALIDATION_FAILED", Message: "One or more fields are invalid"},
		Fields: fields,
	})
}
