package emailtester

import (
	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "email-tester"

var info = tools.Info{
	ID:          toolID,
	Name:        "Email Subject Line Tester",
	Icon:        "📧",
	Description: "Test and optimize your email subject lines for higher open rates",
	Category:    "analysis",
	Features: []string{
		"Overall effectiveness score",
		"Character and word count",
		"Spam score analysis",
		"Personalization detection",
		"Urgency detection",
		"Emoji usage analysis",
		"Open rate prediction",
		"A/B testing suggestions",
	},
	RequiredFields: []string{"subject_line"},
	Metrics: map[string]interface{}{
		"optimalLength": "30-50 characters",
		"optimalWords":  "4-7 words",
		"spamTriggers":  []string{"Free", "Buy Now", "Act Now", "!!!", "LIMITED"},
		"powerWords":    []string{"You", "New", "Exclusive", "Secret", "Proven"},
	},
	Tips: []string{
		"Keep it under 50 characters",
		"Use personalization like {name}",
		"Ask questions to increase engagement",
		"Test with and without emojis",
		"Avoid spam trigger words",
	},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/email-tester")
	g.GET("/info", func(c *gin.Context) { tools.WriteInfo(c, info) })

	a := g.Group("", authMW)
	a.POST("/analyze", h.analyze)
	tools.RegisterContentRoutes(a, h.deps, toolID)
}

func (h *Handler) analyze(c *gin.Context) {
	var dto TestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "")
		return
	}
	if !tools.ConsumeQuota(c, h.deps) {
		return
	}

	result, err := Test(dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	savedID := tools.PersistResult(c, h.deps, toolID, dto.SubjectLine, dto, result)
	response.OK(c, gin.H{"analysis": result, "saved_content": savedID})
}
