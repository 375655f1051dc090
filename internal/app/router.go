package app

import (
	"quizbank_backend/docs"
	"quizbank_backend/internal/config"
	"quizbank_backend/internal/middleware"
	"quizbank_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// 注意顺序：categories 必须先于 :id 注册
		authGroup.GET("/questions/categories", c.question.ListCategories)
		authGroup.GET("/questions", c.question.ListQuestions)
		authGroup.GET("/questions/:id", c.question.GetQuestion)
		authGroup.POST("/questions/:id/answer", c.question.SubmitAnswer)

		authGroup.GET("/stats", c.stats.GetStats)
		authGroup.DELETE("/stats/reset", c.stats.ResetStats)
	}

	// 管理员相关接口
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		adminGroup.GET("/questions", c.admin.ListQuestions)
		adminGroup.POST("/questions", c.admin.CreateQuestion)
		adminGroup.POST("/questions/bulk", c.admin.BulkCreateQuestions)
		adminGroup.DELETE("/questions/:id", c.admin.DeleteQuestion)
		adminGroup.POST("/categories", c.admin.CreateCategory)
		adminGroup.DELETE("/categories/:id", c.admin.DeleteCategory)
	}
}
