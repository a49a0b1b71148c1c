package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meritlives/tools-core/internal/middleware"
	"github.com/meritlives/tools-core/internal/modules/ai"
	"github.com/meritlives/tools-core/internal/modules/auth"
	"github.com/meritlives/tools-core/internal/modules/billing"
	"github.com/meritlives/tools-core/internal/modules/toolcontent"
	"github.com/meritlives/tools-core/internal/modules/tools"
	"github.com/meritlives/tools-core/internal/modules/tools/adcopy"
	"github.com/meritlives/tools-core/internal/modules/tools/contentidea"
	"github.com/meritlives/tools-core/internal/modules/tools/emailtester"
	"github.com/meritlives/tools-core/internal/modules/tools/funnel"
	"github.com/meritlives/tools-core/internal/modules/tools/headline"
	"github.com/meritlives/tools-core/internal/modules/tools/seometa"
	"github.com/meritlives/tools-core/internal/modules/tools/socialmedia"
	"github.com/meritlives/tools-core/internal/modules/tools/valueprop"
	"github.com/meritlives/tools-core/internal/modules/user"
	"github.com/meritlives/tools-core/internal/pkg/response"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Shared services
	store := toolcontent.NewService(a.mc)
	billingSvc := billing.NewService(db)
	usage := billing.NewUsageService(db, a.rc)
	paystack := billing.NewPaystackClient(a.cfg.Paystack)
	authSvc := auth.NewService(db, billingSvc, a.logger)
	userSvc := user.NewService(db, billingSvc, usage, store)
	aiSvc := ai.NewService(ai.NewClient(a.cfg.AI), a.logger)

	deps := tools.Deps{Store: store, Usage: usage, Logger: a.logger}

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.RateLimit(a.rc.Raw()))
	api.Use(middleware.Idempotence(a.rc.Raw()))
	api.Use(middleware.HTTPCache(a.rc.Raw(), middleware.HTTPCacheOptions{
		SkipPaths: []string{apiPrefix + "/payments/webhook"},
	}))

	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)
	user.NewHandler(userSvc).RegisterRoutes(api, authMW)
	billing.NewHandler(billingSvc, usage, paystack, a.cfg.Paystack.CallbackURL, a.logger).RegisterRoutes(api, authMW)
	ai.NewHandler(aiSvc, deps).RegisterRoutes(api, authMW)

	toolsGroup := api.Group("/tools")
	tools.RegisterCatalogRoutes(toolsGroup)
	socialmedia.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
	valueprop.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
	headline.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
	seometa.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
	emailtester.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
	contentidea.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
	adcopy.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
	funnel.NewHandler(deps).RegisterRoutes(toolsGroup, authMW)
}
