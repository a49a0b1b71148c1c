package ai

import (
	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

// Generated posts are stored alongside the template-generated ones.
const contentToolID = "social-media"

type Handler struct {
	svc  *Service
	deps tools.Deps
}

func NewHandler(svc *Service, deps tools.Deps) *Handler {
	return &Handler{svc: svc, deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/ai", authMW)
	g.POST("/generate-posts", h.generatePosts)
	g.POST("/hashtags", h.hashtags)
	g.POST("/analyze", h.analyze)
}

func (h *Handler) generatePosts(c *gin.Context) {
	var dto GeneratePostsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}
	if !tools.ConsumeQuota(c, h.deps) {
		return
	}

	result := h.svc.GeneratePosts(c.Request.Context(), dto)

	title := dto.Topic
	if dto.BrandName != "" {
		title = dto.BrandName + ": " + dto.Topic
	}
	savedID := tools.PersistResult(c, h.deps, contentToolID, title, dto, result)
	response.OK(c, gin.H{"content": result, "saved_content": savedID})
}

func (h *Handler) hashtags(c *gin.Context) {
	var dto HashtagsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}

	response.OK(c, h.svc.TrendingHashtags(c.Request.Context(), dto))
}

func (h *Handler) analyze(c *gin.Context) {
	var dto AnalyzeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}

	response.OK(c, h.svc.AnalyzePost(c.Request.Context(), dto))
}
