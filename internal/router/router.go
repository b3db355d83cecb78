package router

import (
	"dmg-assess/internal/config"
	"dmg-assess/internal/handler"
	"dmg-assess/internal/middleware"
	"dmg-assess/internal/repository"
	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"
	"dmg-assess/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由；redisClient 为 nil 时导出进度和并发限制使用进程内实现
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(&cfg.CORS))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "弹药毁伤评估系统 API",
			"version": "1.0.0",
		})
	})

	repos := repository.NewRepository(db)

	// 导出进度与并发槽位
	var (
		progress service.ProgressStore
		limiter  redis_limiter.Limiter
	)
	if redisClient != nil {
		progress = service.NewRedisProgressStore(redisClient, cfg.Export.GetProgressTTL())
		limiter = redis_limiter.NewRedisLimiter(redisClient, cfg.Export.MaxConcurrent, "export:slots:", cfg.Export.GetProgressTTL(), logger)
	} else {
		progress = service.NewMemoryProgressStore(cfg.Export.GetProgressTTL())
		limiter = redis_limiter.NewLocalLimiter(cfg.Export.MaxConcurrent)
	}

	// 初始化Service
	targets := service.NewTargetResolver(repos.Target)
	authService := service.NewAuthService(repos.User, jwtManager)
	sceneService := service.NewSceneService(repos.Scene, repos.Parameter, repos.Ammunition, targets, logger)
	parameterService := service.NewParameterService(repos.Parameter, repos.Scene)
	resultService := service.NewResultService(repos.Result, repos.Scene, repos.Parameter, repos.Ammunition, targets, logger)
	reportService := service.NewReportService(repos.Report, repos.Result, repos.User, repos.Ammunition, targets, logger)
	exportService := service.NewExportService(repos.Scene, repos.Parameter, repos.Result, repos.Report, progress, limiter, cfg.Export, logger)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	sceneHandler := handler.NewSceneHandler(sceneService, parameterService, resultService)
	parameterHandler := handler.NewParameterHandler(parameterService)
	resultHandler := handler.NewResultHandler(resultService)
	reportHandler := handler.NewReportHandler(reportService)
	exportHandler := handler.NewExportHandler(exportService)

	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/login", authHandler.Login)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			authorized.GET("/me", authHandler.GetMe)

			// 毁伤场景
			scenes := authorized.Group("/scenes")
			scenes.GET("", sceneHandler.List)
			scenes.POST("", sceneHandler.Create)
			scenes.POST("/save", sceneHandler.Save)
			scenes.GET("/:id", sceneHandler.Get)
			scenes.PUT("/:id", sceneHandler.Update)
			scenes.DELETE("/:id", sceneHandler.Delete)
			scenes.GET("/:id/detail", sceneHandler.Detail)
			scenes.GET("/:id/parameters", sceneHandler.Parameters)
			scenes.GET("/:id/results", sceneHandler.Results)

			// 毁伤参数
			params := authorized.Group("/parameters")
			params.GET("", parameterHandler.List)
			params.POST("", parameterHandler.Create)
			params.GET("/:id", parameterHandler.Get)
			params.PUT("/:id", parameterHandler.Update)
			params.DELETE("/:id", parameterHandler.Delete)

			// 评估结果
			results := authorized.Group("/results")
			results.GET("", resultHandler.List)
			results.POST("", resultHandler.Create)
			results.POST("/compute", resultHandler.Compute)
			results.GET("/:id", resultHandler.Get)
			results.PUT("/:id", resultHandler.Update)
			results.DELETE("/:id", resultHandler.Delete)

			// 评估报告
			reports := authorized.Group("/reports")
			reports.GET("", reportHandler.List)
			reports.POST("", reportHandler.Create)
			reports.GET("/:id", reportHandler.Get)
			reports.PUT("/:id", reportHandler.Update)
			reports.DELETE("/:id", reportHandler.Delete)
			reports.GET("/:id/detail", reportHandler.Detail)

			// 导出
			authorized.POST("/exports", exportHandler.Start)
			authorized.GET("/exports/:job_id", exportHandler.Progress)
		}
	}

	return r
}
