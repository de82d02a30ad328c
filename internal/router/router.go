package router

import (
	"time"

	"llm-console/internal/config"
	"llm-console/internal/handler"
	"llm-console/internal/middleware"
	"llm-console/internal/repository"
	"llm-console/internal/service"
	"llm-console/internal/utils"
	"llm-console/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "LLM管理控制台 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	modelRepo := repository.NewModelRepository(db)
	configurationRepo := repository.NewConfigurationRepository(db)
	taskRepo := repository.NewPromptTaskRepository(db)

	// 快速测试按提供商限制并发
	var limiter *redis_limiter.RedisLimiter
	if redisClient != nil {
		limiter = redis_limiter.NewRedisLimiter(redisClient, cfg.LLM.MaxConcurrent, "quicktest:", 10*time.Minute)
	}

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager, cfg)
	providerService := service.NewProviderService(providerRepo)
	modelService := service.NewModelService(modelRepo, providerRepo)
	configurationService := service.NewConfigurationService(configurationRepo, modelRepo)
	taskService := service.NewPromptTaskService(taskRepo)
	quickTestService := service.NewQuickTestService(providerRepo, modelRepo, limiter, cfg)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	providerHandler := handler.NewProviderHandler(providerService)
	modelHandler := handler.NewModelHandler(modelService)
	configurationHandler := handler.NewConfigurationHandler(configurationService)
	taskHandler := handler.NewPromptTaskHandler(taskService)
	quickTestHandler := handler.NewQuickTestHandler(quickTestService)
	statsHandler := handler.NewStatsHandler(providerRepo, modelRepo, configurationRepo, taskRepo)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/login", authHandler.Login)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			// 用户信息
			authorized.GET("/me", authHandler.GetMe)
			authorized.POST("/logout", authHandler.Logout)

			// 只读接口
			authorized.GET("/providers", providerHandler.GetProviders)
			authorized.GET("/tasks", taskHandler.GetTasks)

			// 管理员接口
			adminGroup := authorized.Group("/admin")
			adminGroup.Use(middleware.AdminMiddleware())
			{
				adminGroup.GET("/stats", statsHandler.GetStats)

				adminGroup.GET("/providers", providerHandler.GetAllProviders)
				adminGroup.GET("/providers/preferred", providerHandler.GetPreferredProvider)
				adminGroup.POST("/providers", providerHandler.CreateProvider)
				adminGroup.PUT("/providers/:id", providerHandler.UpdateProvider)
				adminGroup.DELETE("/providers/:id", providerHandler.DeleteProvider)
				adminGroup.POST("/providers/toggle", providerHandler.ToggleProvider)

				adminGroup.GET("/models", modelHandler.GetAllModels)
				adminGroup.GET("/models/by-provider", modelHandler.GetModelsByProvider)
				adminGroup.GET("/models/lookup", modelHandler.LookupModel)
				adminGroup.POST("/models", modelHandler.CreateModel)
				adminGroup.PUT("/models/:id", modelHandler.UpdateModel)
				adminGroup.DELETE("/models/:id", modelHandler.DeleteModel)
				adminGroup.POST("/models/toggle", modelHandler.ToggleModel)
				adminGroup.POST("/models/default", modelHandler.SetDefaultModel)

				adminGroup.GET("/configurations", configurationHandler.GetAllConfigurations)
				adminGroup.GET("/configurations/default", configurationHandler.GetDefaultConfiguration)
				adminGroup.POST("/configurations", configurationHandler.CreateConfiguration)
				adminGroup.PUT("/configurations/:id", configurationHandler.UpdateConfiguration)
				adminGroup.DELETE("/configurations/:id", configurationHandler.DeleteConfiguration)
				adminGroup.POST("/configurations/toggle", configurationHandler.ToggleConfiguration)
				adminGroup.POST("/configurations/default", configurationHandler.SetDefaultConfiguration)

				adminGroup.GET("/tasks", taskHandler.GetAllTasks)
				adminGroup.POST("/tasks", taskHandler.CreateTask)
				adminGroup.PUT("/tasks/:id", taskHandler.UpdateTask)
				adminGroup.DELETE("/tasks/:id", taskHandler.DeleteTask)
				adminGroup.POST("/tasks/toggle", taskHandler.ToggleTask)

				adminGroup.POST("/quick-test", quickTestHandler.RunQuickTest)
			}
		}
	}

	return r
}
