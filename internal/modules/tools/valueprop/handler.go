package valueprop

import (
	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const toolID = "value-proposition"

var info = tools.Info{
	ID:          toolID,
	Name:        "Value Proposition Generator",
	Icon:        "💎",
	Description: "Create compelling value propositions for your products and services",
	Category:    "content",
	Features: []string{
		"Customer-focused messaging",
		"Benefit-driven propositions",
		"Competitive differentiation",
		"Multiple variations",
		"Industry-specific templates",
	},
	RequiredFields: []string{"product_name", "target_audience", "problem_solved"},
	OptionalFields: []string{"unique_features", "competitors"},
}

type Handler struct {
	deps tools.Deps
}

func NewHandler(deps tools.Deps) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/value-prop")
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
