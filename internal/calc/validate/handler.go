package validate

import (
	"encoding/json"
	"net/http"

	"BharatYield/internal/httpx"
)

type Request struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type Response struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type Handler struct{}

// Check validates a single field as the user types.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}
	msg := Validate(FieldKey(req.Field), req.Value)
	httpx.JSON(w, http.StatusOK, Response{Field: req.Field, Valid: msg == "", Error: msg})
}
