package middleware

import (
	"net/http"
	"strings"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/domain/services"
	"upkeep-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticate 验证令牌并把声明写入上下文，失败时返回false
func authenticate(c *gin.Context) (*services.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Authorization header is required",
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	// 提取token
	tokenString := extractToken(authHeader)
	claims, err := jwtService.ExtractClaims(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    401,
			"message": "Invalid token: " + err.Error(),
			"data":    nil,
		})
		c.Abort()
		return nil, false
	}

	// 存储claims到上下文
	c.Set("userID", claims.UserID)
	c.Set("role", claims.Role)
	c.Set("claims", claims)
	return claims, true
}

// RequireRoles 在认证的基础上校验角色是否在允许集合内
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c)
		if !ok {
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"code":    403,
			"message": "Insufficient permissions: requires role in [" + strings.Join(roles, ", ") + "]",
			"data":    nil,
		})
		c.Abort()
	}
}

// Authentication 通用的认证中间件，任何已登录角色均可通过
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// AuthenticateAdmin 验证管理员权限
func AuthenticateAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleAdmin)
}

// AuthenticateResident 验证居民权限，管理员也可以访问居民的接口
func AuthenticateResident() gin.HandlerFunc {
	return RequireRoles(models.RoleResident, models.RoleAdmin)
}

// AuthenticateTechnician 验证技术员权限，管理员也可以访问技术员的接口
func AuthenticateTechnician() gin.HandlerFunc {
	return RequireRoles(models.RoleTechnician, models.RoleAdmin)
}

// CurrentUserID 从上下文中读取当前用户ID
func CurrentUserID(c *gin.Context) uint {
	if id, exists := c.Get("userID"); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// CurrentRole 从上下文中读取当前用户角色
func CurrentRole(c *gin.Context) string {
	if role, exists := c.Get("role"); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
