package funnel

import (
	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "funnel-builder"

type infoStage struct {
	Name          string   `json:"name"`
	Objective     string   `json:"objective"`
	Tactics       []string `json:"tactics"`
	BudgetPercent int      `json:"budget_percent"`
}

var info = tools.Info{
	ID:          toolID,
	Name:        "Marketing Funnel Builder",
	Icon:        "🎯",
	Description: "Build complete marketing funnel strategies",
	Category:    "strategy",
	Features: []string{
		"Multi-stage funnel creation",
		"Budget allocation",
		"Timeline planning",
		"Tactic recommendations",
		"KPI suggestions",
		"ROI predictions",
		"Conversion optimization",
		"A/B testing strategies",
	},
	RequiredFields: []string{"business_name", "target_audience", "primary_offer"},
	OptionalFields: []string{"business_type", "funnel_goal", "budget"},
	Stages: []infoStage{
		{Name: "Awareness", Objective: "Attract attention", Tactics: []string{"Social media ads", "Content marketing", "SEO", "PR"}, BudgetPercent: 30},
		{Name: "Interest", Objective: "Generate leads", Tactics: []string{"Lead magnets", "Email capture", "Webinars", "Free trials"}, BudgetPercent: 25},
		{Name: "Decision", Objective: "Nurture prospects", Tactics: []string{"Email sequences", "Case studies", "Demos", "Consultations"}, BudgetPercent: 25},
		{Name: "Action", Objective: "Convert to customers", Tactics: []string{"Sales calls", "Limited offers", "Guarantees", "Easy checkout"}, BudgetPercent: 20},
	},
	KPIs: []string{
		"Website traffic",
		"Lead conversion rate",
		"Email open rate",
		"Click-through rate",
		"Sales conversion rate",
		"Customer acquisition cost",
		"Return on ad spend",
	},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/funnel-builder")
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

	result, err := Generate(dto)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	savedID := tools.PersistResult(c, h.deps, toolID, result.Name, dto, result)
	response.OK(c, gin.H{"content": result, "saved_content": savedID})
}
