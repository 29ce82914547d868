package weather

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"BharatYield/internal/httpx"
	"BharatYield/internal/logger"
)

type Fetcher interface {
	Fetch(ctx context.Context, location string) (*Report, error)
}

type Handler struct {
	Client Fetcher
	Log    *zap.Logger
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		location = DefaultLocation
	}
	rep, err := h.Client.Fetch(r.Context(), location)
	if errors.Is(err, ErrUnknownLocation) {
		httpx.Error(w, http.StatusNotFound, "UNKNOWN_LOCATION", "Unknown location")
		return
	}
	if err != nil {
		logger.OrNop(h.Log).Warn("weather fetch failed, serving fallback", zap.String("location", location), zap.Error(err))
		rep = FallbackReport(location)
	}
	httpx.JSON(w, http.StatusOK, rep)
}

func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Locations())
}
