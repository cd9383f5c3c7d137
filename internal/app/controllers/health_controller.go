package controllers

import (
	"context"
	"time"
	"upkeep-http-service/internal/app/middleware"
	"upkeep-http-service/internal/domain/services"
	"upkeep-http-service/internal/domain/services/container"
	"upkeep-http-service/internal/error/code"
	"upkeep-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// 进程启动时间，用于计算运行时长
var startTime = time.Now()

// HealthController 处理健康检查请求
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建一个新的健康检查控制器
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Ping 服务存活检查
// @Summary      存活检查
// @Description  返回pong，用于探测服务是否在线
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{} "pong"
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"message": "pong",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Status 服务健康状态
// @Summary      健康状态
// @Description  返回数据库、Redis和响应缓存的健康状态
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{} "各组件健康状态"
// @Router       /health [get]
func (c *HealthController) Status() {
	dbStatus := "ok"
	sqlDB, err := c.Container.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			dbStatus = "error: " + err.Error()
		}
	}

	redisStatus := "ok"
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(); err != nil {
		redisStatus = "error: " + err.Error()
	}

	response.Success(c.Ctx, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
		"cache":    middleware.CacheStats(),
		"uptime":   time.Since(startTime).String(),
		"time":     time.Now().Format(time.RFC3339),
	})
}
