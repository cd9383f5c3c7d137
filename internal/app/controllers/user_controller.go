package controllers

import (
	"time"
	"upkeep-http-service/internal/app/middleware"
	"upkeep-http-service/internal/domain/services"
	"upkeep-http-service/internal/domain/services/container"
	"upkeep-http-service/internal/error/code"
	"upkeep-http-service/internal/error/response"
	"upkeep-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 技术员目录在Redis中的缓存时长
const technicianCacheTTL = 10 * time.Minute

// InterfaceUserController 定义用户控制器接口
type InterfaceUserController interface {
	GetTechnicians()
	GetProfile()
	GetDashboardStats()
}

// UserController 处理用户相关请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getTechnicians":
			controller.GetTechnicians()
		case "getProfile":
			controller.GetProfile()
		case "getDashboardStats":
			controller.GetDashboardStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetTechnicians 获取技术员目录
// @Summary      获取技术员目录
// @Description  管理员获取全部技术员列表，优先从Redis缓存读取
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{} "技术员列表"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      403  {object}  ErrorResponse "权限不足"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /users/technicians [get]
func (c *UserController) GetTechnicians() {
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)

	// 先查缓存，缓存不可用时直接回源数据库
	if technicians, err := redisService.GetCachedTechnicians(); err == nil {
		response.Success(c.Ctx, gin.H{
			"technicians": technicians,
			"count":       len(technicians),
		})
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	technicians, err := userService.GetTechnicians()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询技术员失败", nil)
		return
	}

	if err := redisService.CacheTechnicians(technicians, technicianCacheTTL); err != nil {
		logger.Warning("缓存技术员目录失败: %v", err)
	}

	response.Success(c.Ctx, gin.H{
		"technicians": technicians,
		"count":       len(technicians),
	})
}

// GetProfile 获取当前用户信息
// @Summary      获取当前用户信息
// @Description  根据令牌中的用户ID返回当前用户的资料
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{} "用户信息"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      404  {object}  ErrorResponse "用户不存在"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /users/profile [get]
func (c *UserController) GetProfile() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)

	user, err := userService.GetUserByID(middleware.CurrentUserID(c.Ctx))
	if err != nil {
		if err.Error() == "用户不存在" {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询用户失败", nil)
		return
	}

	response.Success(c.Ctx, user)
}

// GetDashboardStats 获取看板统计
// @Summary      获取看板统计
// @Description  根据当前用户角色返回对应范围的统计：管理员看全局，技术员和居民只看与自己相关的工单
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{} "统计数据"
// @Failure      401  {object}  ErrorResponse "未认证"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /users/dashboard-stats [get]
func (c *UserController) GetDashboardStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)

	stats, err := statsService.GetDashboardStats(
		middleware.CurrentUserID(c.Ctx),
		middleware.CurrentRole(c.Ctx),
	)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "查询统计数据失败", nil)
		return
	}

	response.Success(c.Ctx, stats)
}
