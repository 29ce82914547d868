package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"BharatYield/internal/auth"
	"BharatYield/internal/httpx"
	"BharatYield/internal/logger"
	"BharatYield/internal/repo"
)

var farmSizes = map[string]bool{"": true, "small": true, "medium": true, "large": true}

type ProfileHandler struct {
	Users repo.UserStore
	Log   *zap.Logger
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Login required")
		return
	}
	u, err := h.Users.FindByID(r.Context(), userID)
	if errors.Is(err, repo.ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}
	if err != nil {
		logger.OrNop(h.Log).Error("load profile", zap.String("user_id", userID), zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL", "Could not load profile")
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Login required")
		return
	}

	var req repo.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request payload")
		return
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httpx.FieldErrors(w, map[string]string{"name": "Name cannot be empty"})
			return
		}
		req.Name = &name
	}
	if req.FarmSize != nil && !farmSizes[*req.FarmSize] {
		httpx.FieldErrors(w, map[string]string{"farmSize": "Farm size must be small, medium or large"})
		return
	}

	u, err := h.Users.UpdateProfile(r.Context(), userID, req)
	if errors.Is(err, repo.ErrNotFound) {
		httpx.Error(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}
	if err != nil {
		logger.OrNop(h.Log).Error("update profile", zap.String("user_id", userID), zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "INTERNAL", "Could not update profile")
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}
