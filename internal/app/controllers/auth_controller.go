package controllers

import (
	"upkeep-http-service/internal/app/middleware"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/domain/services"
	"upkeep-http-service/internal/domain/services/container"
	"upkeep-http-service/internal/error/code"
	"upkeep-http-service/internal/error/response"
	"upkeep-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Register()
	Login()
}

// AuthController 处理身份验证请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password        string `json:"password" binding:"required,min=6" example:"secret1"`
	FirstName       string `json:"firstName" binding:"required,min=2,max=50" example:"Alice"`
	LastName        string `json:"lastName" binding:"required,min=2,max=50" example:"Lee"`
	Role            string `json:"role" binding:"required,oneof=resident technician" example:"resident"`
	PhoneNumber     string `json:"phoneNumber" binding:"omitempty,min=10,max=15" example:"13812345678"`
	ApartmentNumber string `json:"apartmentNumber" binding:"omitempty,max=20" example:"12B"`
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"邮箱或密码错误"`
	Data    interface{} `json:"data"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Register 处理用户注册
// @Summary      用户注册
// @Description  注册居民或技术员账户，管理员账户不能通过该接口创建
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册请求参数"
// @Success      201  {object}  map[string]interface{} "成功响应，包含token和用户信息"
// @Failure      400  {object}  ErrorResponse "请求参数错误"
// @Failure      409  {object}  ErrorResponse "邮箱已被注册"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	user := &models.User{
		Email:           req.Email,
		Password:        req.Password, // 密码哈希由模型钩子处理
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Role:            req.Role,
		PhoneNumber:     req.PhoneNumber,
		ApartmentNumber: req.ApartmentNumber,
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Register(user)
	if err != nil {
		if err.Error() == "该邮箱已被注册" {
			response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
			return
		}
		if err.Error() == "无效的用户角色" {
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建用户失败", nil)
		return
	}

	// 新注册的技术员会改变技术员目录，立即清除相关缓存
	if result.User.Role == models.RoleTechnician {
		purgeTechnicianDirectory(c.Container.GetService("redis").(services.InterfaceRedisService))
	}

	response.Created(c.Ctx, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// purgeTechnicianDirectory 在技术员名单变化后清除Redis目录缓存和响应缓存
func purgeTechnicianDirectory(redisService services.InterfaceRedisService) {
	if err := redisService.InvalidateTechnicians(); err != nil {
		logger.Warning("清除技术员目录缓存失败: %v", err)
	}
	middleware.PurgeCache()
}

// Login 处理用户登录
// @Summary      用户登录
// @Description  处理用户登录并返回JWT令牌，令牌中包含用户ID和角色
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录请求参数"
// @Success      200  {object}  map[string]interface{} "成功响应，包含token和用户信息"
// @Failure      400  {object}  ErrorResponse "请求参数错误"
// @Failure      401  {object}  ErrorResponse "邮箱或密码错误"
// @Failure      500  {object}  ErrorResponse "服务器错误"
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		// 统一返回"邮箱或密码错误"，不暴露邮箱是否存在
		if err.Error() == "邮箱或密码错误" {
			response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "登录失败", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}
