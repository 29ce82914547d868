package profit

import (
	"encoding/json"
	"errors"
	"net/http"

	"BharatYield/internal/calc/validate"
	"BharatYield/internal/httpx"
)

// Request is the form payload shared by the calculator and the report export.
type Request struct {
	Crop   string            `json:"crop"`
	Fields map[string]string `json:"fields"`
}

type Handler struct{}

// Decode reads a Request and converts it to FarmInputs, writing the error
// response itself when that fails.
func Decode(w http.ResponseWriter, r *http.Request) (FarmInputs, bool) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return FarmInputs{}, false
	}
	in, err := FromForm(req.Crop, req.Fields)
	if err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			httpx.FieldErrors(w, verrs.Strings())
			return FarmInputs{}, false
		}
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return FarmInputs{}, false
	}
	return in, true
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	in, ok := Decode(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, Calculate(in))
}

func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Crops())
}
