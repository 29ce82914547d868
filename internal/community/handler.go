package community

import (
	"net/http"
	"strconv"

	"BharatYield/internal/httpx"
)

type Handler struct{}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	alerts, _ := strconv.ParseBool(r.URL.Query().Get("alerts"))
	httpx.JSON(w, http.StatusOK, Posts(alerts))
}
