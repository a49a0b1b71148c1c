package headline

import (
	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "headline-analyzer"

var info = tools.Info{
	ID:          toolID,
	Name:        "Headline Analyzer",
	Icon:        "📰",
	Description: "Analyze and score your headlines for maximum impact",
	Category:    "analysis",
	Features: []string{
		"Overall effectiveness score (0-100)",
		"Word count analysis",
		"Emotional impact assessment",
		"Power words detection",
		"Sentiment analysis",
		"Improvement suggestions",
		"SEO optimization tips",
	},
	RequiredFields: []string{"headline"},
	Scoring: map[string]string{
		"excellent": "80-100",
		"good":      "60-79",
		"average":   "40-59",
		"needsWork": "0-39",
	},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/headline")
	g.GET("/info", func(c *gin.Context) { tools.WriteInfo(c, info) })

	a := g.Group("", authMW)
	a.POST("/analyze", h.analyze)
	tools.RegisterContentRoutes(a, h.deps, toolID)
}

func (h *Handler) analyze(c *gin.Context) {
	var dto AnalyzeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}
	if !tools.ConsumeQuota(c, h.deps) {
		return
	}

	result, err := Analyze(dto, tools.NewSource())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	savedID := tools.PersistResult(c, h.deps, toolID, dto.Headline, dto, result)
	response.OK(c, gin.H{"analysis": result, "saved_content": savedID})
}
