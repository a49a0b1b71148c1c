package socialmedia

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "social-media"

var info = tools.Info{
	ID:          toolID,
	Name:        "Social Media Generator",
	Icon:        "📱",
	Description: "Generate engaging social media posts for multiple platforms",
	Category:    "content",
	Platforms:   []string{"Facebook", "Twitter", "Instagram", "LinkedIn", "TikTok"},
	Features: []string{
		"Multi-platform support",
		"Customizable tone and style",
		"Hashtag suggestions",
		"Emoji integration",
		"Content templates",
		"Character count optimization",
	},
	RequiredFields: []string{"niche", "platforms"},
	OptionalFields: []string{"content_type", "brand_voice", "interests", "post_quantity"},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/social-media")
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
