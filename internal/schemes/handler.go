package schemes

import (
	"net/http"
	"strconv"

	"BharatYield/internal/httpx"
)

type Handler struct {
	Directory *Directory
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	httpx.JSON(w, http.StatusOK, h.Directory.Page(q.Get("category"), page, perPage))
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Directory.Categories())
}
