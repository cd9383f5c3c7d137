package routes

import (
	"time"
	_ "upkeep-http-service/docs"
	"upkeep-http-service/internal/app/controllers"
	"upkeep-http-service/internal/app/middleware"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/domain/services/container"
	"upkeep-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 上传的附件以静态文件方式对外提供
	r.Static("/uploads", cfg.UploadDir)

	// 注册路由
	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	// API 路由根路径
	api := r.Group("/api")

	// 全局IP限流 - 15分钟窗口内每IP最多100个请求
	api.Use(middleware.IPRateLimiter(100.0/(15*60), 100))

	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container, cfg)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "status"))

	// 认证路由
	authGroup := api.Group("/auth")
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	// 工单路由
	requestGroup := api.Group("/requests")
	{
		// 只有居民本人可以创建工单，附件先经过上传中间件落盘
		requestGroup.POST("",
			middleware.RequireRoles(models.RoleResident),
			middleware.FileUpload(cfg),
			controllers.HandleRequestFunc(container, "createRequest"))

		// 居民查看自己的工单，管理员可查看任意居民的工单
		requestGroup.GET("/resident/:residentId",
			middleware.AuthenticateResident(),
			controllers.HandleRequestFunc(container, "getResidentRequests"))

		// 技术员查看分配给自己的工单
		requestGroup.GET("/technician/:technicianId",
			middleware.AuthenticateTechnician(),
			controllers.HandleRequestFunc(container, "getTechnicianRequests"))

		// 技术员更新工单状态
		requestGroup.PUT("/:id/status",
			middleware.AuthenticateTechnician(),
			controllers.HandleRequestFunc(container, "updateStatus"))

		// 管理员分页查看全部工单
		requestGroup.GET("",
			middleware.AuthenticateAdmin(),
			controllers.HandleRequestFunc(container, "getAllRequests"))

		// 管理员分配技术员
		requestGroup.PUT("/:id/assign",
			middleware.AuthenticateAdmin(),
			controllers.HandleRequestFunc(container, "assignTechnician"))
	}

	// 用户路由
	userGroup := api.Group("/users")
	{
		userGroup.GET("/technicians",
			middleware.AuthenticateAdmin(),
			middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}),
			controllers.HandleUserFunc(container, "getTechnicians"))

		userGroup.GET("/profile",
			middleware.Authentication(),
			controllers.HandleUserFunc(container, "getProfile"))

		userGroup.GET("/dashboard-stats",
			middleware.Authentication(),
			controllers.HandleUserFunc(container, "getDashboardStats"))
	}
}
