package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	healthHandler "mood-recipe-api/internal/api/handlers/health"
	ingredientHandler "mood-recipe-api/internal/api/handlers/ingredient"
	recipeHandler "mood-recipe-api/internal/api/handlers/recipe"
	"mood-recipe-api/internal/api/middleware"
	"mood-recipe-api/internal/core/ai/cache"
	"mood-recipe-api/internal/core/ai/gemini"
	aiService "mood-recipe-api/internal/core/ai/service"
	"mood-recipe-api/internal/core/ingredient"
	"mood-recipe-api/internal/core/recipe"
	"mood-recipe-api/internal/infrastructure/config"
	"mood-recipe-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 整體請求超時，要容得下食譜生成的重試
	timeoutDuration = 120 * time.Second
	// 請求體大小限制，音訊上限加上 multipart 開銷
	maxBodySize = 12 << 20
)

// SetupRouter 組裝所有服務與路由
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager, redisCache *cache.Service) (*gin.Engine, *aiService.Service, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Int("queue_workers", cfg.Queue.Workers),
		zap.String("model", cfg.Gemini.Model),
		zap.String("extract_model", cfg.Gemini.ExtractModel),
	)

	provider := gemini.NewClient(cfg)
	ai := aiService.NewService(cfg, provider, cacheManager, redisCache)

	// 啟動探測。失敗時不中止，文字擷取仍有字典降級
	if err := ai.Init(context.Background()); err != nil {
		common.LogWarn("AI 服務探測失敗，以降級模式啟動", zap.Error(err))
	}

	vocab := ingredient.DefaultVocabulary()
	extractor := ingredient.NewExtractor(cfg, ai, vocab)
	validator := ingredient.NewValidator(vocab)
	recipeSvc := recipe.NewService(cfg, ai)

	if extractor == nil || validator == nil || recipeSvc == nil {
		return nil, nil, fmt.Errorf("failed to initialize core services")
	}

	// 請求級超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
		}
	})

	healthH := healthHandler.NewHandler(cfg, ai)
	router.GET("/health", healthH.HealthCheck)
	router.GET("/ready", healthH.ReadinessCheck)
	router.GET("/live", healthH.LivenessCheck)

	api := router.Group("/api/v1")
	{
		ingredientH := ingredientHandler.NewHandler(extractor, validator)
		ingredientGroup := api.Group("/ingredients")
		{
			ingredientGroup.POST("/extract-from-text", ingredientH.HandleExtractFromText)
			ingredientGroup.POST("/extract-from-audio", ingredientH.HandleExtractFromAudio)
			ingredientGroup.POST("/validate", ingredientH.HandleValidate)
		}

		recipeH := recipeHandler.NewHandler(recipeSvc)
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.POST("/generate", recipeH.HandleGenerate)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("ai_available", ai.Healthy()),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, ai, nil
}
