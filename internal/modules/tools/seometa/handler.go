package seometa

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "seo-meta"

var info = tools.Info{
	ID:          toolID,
	Name:        "SEO Meta Generator",
	Icon:        "🔍",
	Description: "Generate SEO-optimized meta tags and descriptions",
	Category:    "seo",
	Features: []string{
		"Meta title generation (50-60 chars)",
		"Meta description (150-160 chars)",
		"Open Graph tags",
		"Twitter Card tags",
		"Schema.org markup",
		"Canonical URL setup",
		"Keyword optimization",
		"Character count validation",
	},
	RequiredFields: []string{"page_title", "primary_keyword"},
	OptionalFields: []string{"secondary_keywords", "content_type", "tone"},
	BestPractices: []string{
		"Keep titles under 60 characters",
		"Descriptions should be 150-160 characters",
		"Include target keywords naturally",
		"Make it compelling for clicks",
	},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/seo-meta")
	g.GET("/info", func(c *gin.Context) { tools.WriteInfo(c, info) })

	a := g.Group("", authMW)
	a.POST("/generate", h.generate)
	tools.RegisterContentRoutes(a, h.deps, toolID)
}

func (h *Handler) generate(c *gin.Context) {
	var dto GenerateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}
	if !tools.ConsumeQuota(c, h.deps) {
		return
	}

	result, err := Generate(dto, tools.NewSource(), time.Now())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	savedID := tools.PersistResult(c, h.deps, toolID, dto.PageTitle, dto, result)
	response.OK(c, gin.H{"content": result, "saved_content": savedID})
}
