package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

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
	g := rg.Group("/auth")
	g.POST("/signup", h.signup)
	g.POST("/login", h.login)

	a := g.Group("", authMW)
	a.POST("/logout", h.logout)
	a.GET("/me", h.me)
	a.GET("/sessions", h.sessions)
	a.DELETE("/sessions/:id", h.revokeSession)
	a.POST("/sessions/revoke-others", h.revokeOthers)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide name, email, and password")
		return
	}

	token, user, err := h.svc.Signup(c.Request.Context(), dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "Error creating account")
		return
	}

	response.Created(c, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user":    h.svc.View(c.Request.Context(), user),
	})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide email and password")
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, "Error logging in")
		return
	}

	response.OK(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    h.svc.View(c.Request.Context(), user),
	})
}

func (h *Handler) logout(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if err := h.svc.Logout(c.Request.Context(), userID, middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, "Error logging out")
		return
	}
	response.OK(c, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.Me(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, "Error fetching user data")
		return
	}
	response.OK(c, gin.H{"user": h.svc.View(c.Request.Context(), user)})
}

func (h *Handler) sessions(c *gin.Context) {
	views, err := h.svc.Sessions(c.Request.Context(), middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, views)
}

func (h *Handler) revokeSession(c *gin.Context) {
	err := h.svc.RevokeSession(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, "")
		return
	}
	response.NoContent(c)
}

func (h *Handler) revokeOthers(c *gin.Context) {
	err := h.svc.RevokeOtherSessions(c.Request.Context(), middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"message": "Signed out of other sessions"})
}
