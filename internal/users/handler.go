package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"processo-backend/internal/shared/server/middleware"
	"processo-backend/internal/shared/server/respond"
)

type Handler struct {
	Service *Service
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.me)
	rg.PUT("/users/me/profile", h.updateProfile)
}

type profileRequest struct {
	JudgingBody string `json:"judgingBody"`
	Role        string `json:"role"`
}

type profileResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	PictureURL      string `json:"pictureUrl"`
	JudgingBody     string `json:"judgingBody"`
	Role            string `json:"role"`
	ProfileComplete bool   `json:"profileComplete"`
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" || strings.HasPrefix(userID, "guest:") {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "sign in required", nil)
		return
	}
	user, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.JSON(c, http.StatusOK, toProfileResponse(user))
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" || strings.HasPrefix(userID, "guest:") {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "sign in required", nil)
		return
	}
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid JSON body", nil)
		return
	}
	user, err := h.Service.UpdateProfile(c.Request.Context(), userID, req.JudgingBody, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_request", "judgingBody and role are required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toProfileResponse(user))
}

func toProfileResponse(user User) profileResponse {
	return profileResponse{
		ID:              user.ID,
		Email:           user.Email,
		FullName:        user.FullName,
		PictureURL:      user.PictureURL,
		JudgingBody:     user.JudgingBody,
		Role:            user.Role,
		ProfileComplete: user.ProfileComplete(),
	}
}
