package user

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/middleware"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/users", authMW)
	g.GET("/profile", h.profile)
	g.PUT("/profile", h.updateProfile)
	g.PUT("/email", h.updateEmail)
	g.POST("/profile-picture", h.updatePicture)
	g.PUT("/password", h.changePassword)
	g.GET("/stats", h.stats)
	g.GET("/export", h.export)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.NotFoundMsg(c, err.Error())
	case errors.Is(err, ErrInvalidPassword):
		response.Unauthorized(c)
	case errors.Is(err, ErrEmailInUse):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, "")
	}
}

func (h *Handler) profile(c *gin.Context) {
	view, err := h.svc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"user": view})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}

	view, err := h.svc.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Profile updated successfully", "user": view})
}

func (h *Handler) updateEmail(c *gin.Context) {
	var dto UpdateEmailDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	if err := h.svc.UpdateEmail(c.Request.Context(), middleware.CurrentUserID(c), dto); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Email updated successfully. Please verify your new email."})
}

func (h *Handler) updatePicture(c *gin.Context) {
	var dto ProfilePictureDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Image URL is required")
		return
	}

	url, err := h.svc.UpdatePicture(c.Request.Context(), middleware.CurrentUserID(c), dto.ImageURL)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Profile picture updated successfully", "profile_picture": url})
}

func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}

	err := h.svc.ChangePassword(c.Request.Context(), middleware.CurrentUserID(c), middleware.CurrentSessionID(c), dto)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Password changed successfully"})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.UsageStats(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"stats": stats})
}

func (h *Handler) export(c *gin.Context) {
	data, err := h.svc.Export(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, gin.H{"data": data})
}
