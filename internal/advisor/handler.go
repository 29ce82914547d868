package advisor

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"BharatYield/internal/calc/validate"
	"BharatYield/internal/httpx"
)

const maxDocumentText = 64 << 10

// truncateText cuts s to at most max bytes without splitting a character.
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	n := max
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

type Handler struct {
	Service *Service
}

type SoilCardRequest struct {
	DocumentText string `json:"documentText"`
}

// Validate checks the numeric profile and soil fields. Values that fail are
// never forwarded to the model.
func (req Request) Validate() validate.Errors {
	return validate.ValidateForm(map[string]string{
		string(validate.LandSize):   req.FarmProfile.LandSize,
		string(validate.Budget):     req.FarmProfile.Budget,
		string(validate.PH):         req.SoilSample.PH,
		string(validate.Nitrogen):   req.SoilSample.Nitrogen,
		string(validate.Phosphorus): req.SoilSample.Phosphorus,
		string(validate.Potassium):  req.SoilSample.Potassium,
	})
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}
	if errs := req.Validate(); errs != nil {
		httpx.FieldErrors(w, errs.Strings())
		return
	}
	req.ExtractedDocumentText = truncateText(req.ExtractedDocumentText, maxDocumentText)
	httpx.JSON(w, http.StatusOK, h.Service.Analyze(r.Context(), req))
}

func (h *Handler) SoilCard(w http.ResponseWriter, r *http.Request) {
	var req SoilCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}
	if req.DocumentText == "" {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "documentText required")
		return
	}
	req.DocumentText = truncateText(req.DocumentText, maxDocumentText)
	httpx.JSON(w, http.StatusOK, h.Service.AnalyzeSoilCard(r.Context(), req.DocumentText))
}
