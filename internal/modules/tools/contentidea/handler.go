package contentidea

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "content-idea"

var info = tools.Info{
	ID:          toolID,
	Name:        "Content Idea Generator",
	Icon:        "💡",
	Description: "Generate creative content ideas for your niche and audience",
	Category:    "content",
	Features: []string{
		"Topic suggestions",
		"Multiple content formats",
		"Trending topics integration",
		"Audience-specific ideas",
		"SEO keyword suggestions",
		"Content calendar integration",
		"Engagement predictions",
	},
	RequiredFields: []string{"niche"},
	OptionalFields: []string{"target_audience", "content_type", "content_format", "tone", "idea_count", "keywords", "goal"},
	Metrics: map[string]interface{}{
		"outputCount": map[string]int{"min": 1, "max": maxIdeaCount, "default": defaultIdeaCount},
	},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/content-idea")
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

	savedID := tools.PersistResult(c, h.deps, toolID, dto.Niche, dto, result)
	response.OK(c, gin.H{"content": result, "saved_content": savedID})
}
