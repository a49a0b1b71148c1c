package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meritlives/tools-core/internal/config"
	"github.com/meritlives/tools-core/internal/database"
	"github.com/meritlives/tools-core/internal/middleware"
	pkgcron "github.com/meritlives/tools-core/internal/pkg/cron"
	"github.com/meritlives/tools-core/internal/pkg/mongodb"
	pkgredis "github.com/meritlives/tools-core/internal/pkg/redis"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	mc     *mongodb.Client
	rc     *pkgredis.Client
	logger *zap.Logger
	sched  *pkgcron.Scheduler
	cancel context.CancelFunc
}

// New initializes runtime settings, datastore connections, routes and cron jobs.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := applyRuntimeSettings(cfg, logger); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	rc, err := pkgredis.Connect(cfg.Redis.URLValue())
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	mc, err := mongodb.Connect(cfg.Mongo.URIValue(), cfg.Mongo.DatabaseName())
	if err != nil {
		return nil, fmt.Errorf("mongodb: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	ctx, cancel := context.WithCancel(context.Background())
	sched := pkgcron.New()

	app := &App{
		cfg:    cfg,
		router: router,
		db:     db,
		mc:     mc,
		rc:     rc,
		logger: logger,
		sched:  sched,
		cancel: cancel,
	}
	app.registerRoutes()
	app.registerCronJobs()
	go sched.Start(ctx)

	return app, nil
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Idempotence"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsCfg.AllowOriginFunc = func(origin string) bool {
			return originAllowed(patterns, origin)
		}
	} else {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
	}
	return corsCfg
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops background jobs and closes the Mongo connection.
func (a *App) Shutdown(ctx context.Context) {
	a.cancel()
	if err := a.mc.Close(ctx); err != nil {
		a.logger.Warn("mongodb close failed", zap.Error(err))
	}
}
