package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/expertrohr/web/internal/config"
	"github.com/expertrohr/web/internal/http/handlers"
	"github.com/expertrohr/web/internal/http/middleware"
	"github.com/expertrohr/web/internal/reviews"

	_ "github.com/expertrohr/web/docs"
)

// Deps are the collaborators the handlers are built from. Journal may be nil.
type Deps struct {
	Relay   handlers.Submitter
	Reviews reviews.Provider
	Journal handlers.Pinger
}

func Router(cfg config.Config, deps Deps, logger zerolog.Logger) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if origins := cfg.CORSOrigins(); origins == nil {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Relay:     deps.Relay,
		Reviews:   deps.Reviews,
		Journal:   deps.Journal,
		Validator: validator.New(),
		Logger:    logger,
		StaticDir: cfg.StaticDir,
	}

	r.GET("/healthz", h.Healthz)
	r.POST("/send-email", h.SendEmail)

	api := r.Group("/api")
	{
		api.GET("/reviews", h.ReviewsList)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(h.SPA)

	return r
}
