package adcopy

import (
	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "ad-copy"

var info = tools.Info{
	ID:          toolID,
	Name:        "Ad Copy Generator",
	Icon:        "📢",
	Description: "Create high-converting ad copy for any platform",
	Category:    "content",
	Platforms:   []string{"Google Ads", "Facebook Ads", "Instagram Ads", "LinkedIn Ads", "Twitter Ads", "TikTok Ads"},
	Features: []string{
		"Platform-specific formatting",
		"Multiple copy variations",
		"Headline optimization",
		"CTA suggestions",
		"Tone customization",
		"A/B testing variants",
		"Hashtag generation",
		"Character limit compliance",
	},
	RequiredFields: []string{"product_name", "product_description", "platform"},
	OptionalFields: []string{"target_audience", "tone", "cta", "keywords"},
	Metrics: map[string]interface{}{
		"tones": []string{"Professional", "Casual", "Urgent", "Authoritative", "Inspirational"},
	},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/ad-copy")
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

	result, err := Generate(dto, tools.NewSource())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	savedID := tools.PersistResult(c, h.deps, toolID, dto.ProductName, dto, result)
	response.OK(c, gin.H{"content": result, "saved_content": savedID})
}
