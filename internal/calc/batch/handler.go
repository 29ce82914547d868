package batch

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"BharatYield/internal/calc/profit"
	"BharatYield/internal/calc/validate"
	"BharatYield/internal/httpx"
	"BharatYield/internal/logger"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Log *zap.Logger
}

type ExportRequest struct {
	Items []Item `json:"items"`
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "File required")
		return
	}
	defer file.Close()

	items, err := ReadItems(file)
	if err != nil {
		logger.OrNop(h.Log).Info("workbook import rejected", zap.Error(err))
		if errors.Is(err, ErrEmptySheet) {
			httpx.Error(w, http.StatusBadRequest, "EMPTY_SHEET", "Empty sheet")
			return
		}
		httpx.Error(w, http.StatusBadRequest, "BAD_FILE", "Invalid file")
		return
	}
	// Row 1 is the header.
	httpx.JSON(w, http.StatusOK, Calculate(items, 1))
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}
	if len(req.Items) == 0 {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "No items")
		return
	}

	inputs := make([]profit.FarmInputs, 0, len(req.Items))
	var rowErrs []RowError
	for i, item := range req.Items {
		in, err := profit.FromForm(item.Crop, item.Fields)
		if err != nil {
			var verrs validate.Errors
			if errors.As(err, &verrs) {
				rowErrs = append(rowErrs, RowError{Row: i + 1, Fields: verrs.Strings()})
				continue
			}
			httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
			return
		}
		inputs = append(inputs, in)
	}
	if len(rowErrs) > 0 {
		httpx.JSON(w, http.StatusUnprocessableEntity, Result{Errors: rowErrs})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"profit-plans.xlsx\"")
	if err := WriteWorkbook(w, inputs); err != nil {
		logger.OrNop(h.Log).Error("workbook export failed", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "Export error")
	}
}
