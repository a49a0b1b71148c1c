package tools

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/pkg/response"
)

// Info is the public metadata each tool exposes on its /info endpoint.
type Info struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Icon           string                 `json:"icon"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category"`
	Platforms      []string               `json:"platforms,omitempty"`
	Features       []string               `json:"features,omitempty"`
	RequiredFields []string               `json:"required_fields,omitempty"`
	OptionalFields []string               `json:"optional_fields,omitempty"`
	BestPractices  []string               `json:"best_practices,omitempty"`
	Scoring        map[string]string      `json:"scoring,omitempty"`
	Metrics        map[string]interface{} `json:"metrics,omitempty"`
	Tips           []string               `json:"tips,omitempty"`
	Stages         interface{}            `json:"stages,omitempty"`
	KPIs           []string               `json:"kpis,omitempty"`
}

// CatalogEntry is the summary row on the tool listing.
type CatalogEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	Endpoint     string `json:"endpoint"`
	Category     string `json:"category"`
	RequiresAuth bool   `json:"requires_auth"`
}

var catalog = []CatalogEntry{
	{ID: "social-media", Name: "Social Media Generator", Icon: "📱", Description: "Generate engaging social media posts for multiple platforms", Endpoint: "/api/v1/tools/social-media", Category: "content", RequiresAuth: true},
	{ID: "value-proposition", Name: "Value Proposition Generator", Icon: "💎", Description: "Create compelling value propositions for your products", Endpoint: "/api/v1/tools/value-prop", Category: "content", RequiresAuth: true},
	{ID: "headline-analyzer", Name: "Headline Analyzer", Icon: "📰", Description: "Analyze and score your headlines for maximum impact", Endpoint: "/api/v1/tools/headline", Category: "analysis", RequiresAuth: true},
	{ID: "seo-meta", Name: "SEO Meta Generator", Icon: "🔍", Description: "Generate SEO-optimized meta tags and descriptions", Endpoint: "/api/v1/tools/seo-meta", Category: "seo", RequiresAuth: true},
	{ID: "email-tester", Name: "Email Subject Line Tester", Icon: "📧", Description: "Test and optimize your email subject lines", Endpoint: "/api/v1/tools/email-tester", Category: "analysis", RequiresAuth: true},
	{ID: "content-idea", Name: "Content Idea Generator", Icon: "💡", Description: "Generate creative content ideas for your niche", Endpoint: "/api/v1/tools/content-idea", Category: "content", RequiresAuth: true},
	{ID: "ad-copy", Name: "Ad Copy Generator", Icon: "📢", Description: "Create high-converting ad copy for any platform", Endpoint: "/api/v1/tools/ad-copy", Category: "content", RequiresAuth: true},
	{ID: "funnel-builder", Name: "Marketing Funnel Builder", Icon: "🎯", Description: "Build complete marketing funnel strategies", Endpoint: "/api/v1/tools/funnel-builder", Category: "strategy", RequiresAuth: true},
}

// Catalog returns the summary listing of every available tool.
func Catalog() []CatalogEntry { return catalog }

// RegisterCatalogRoutes mounts the public listing and health endpoints on
// the /tools group.
func RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/list", listTools)
	rg.GET("/health", health)
}

func listTools(c *gin.Context) {
	categories := make([]string, 0, 4)
	seen := map[string]bool{}
	for _, t := range catalog {
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, t.Category)
		}
	}
	response.OK(c, gin.H{
		"tools":      catalog,
		"categories": categories,
		"total":      len(catalog),
	})
}

func health(c *gin.Context) {
	routes := make(map[string]string, len(catalog))
	for _, t := range catalog {
		routes[t.ID] = "operational"
	}
	response.OK(c, gin.H{
		"status":    "healthy",
		"service":   "tools",
		"timestamp": time.Now(),
		"available": len(catalog),
		"routes":    routes,
	})
}

// WriteInfo serves a tool's /info endpoint.
func WriteInfo(c *gin.Context, info Info) {
	response.OK(c, info)
}
