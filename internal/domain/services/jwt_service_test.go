package services

import (
	"errors"
	"fmt"
	"testing"
	"time"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/infrastructure/config"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// 构造只用于令牌操作的JWT服务，不依赖数据库
func newTestJWTService() InterfaceJWTService {
	cfg := &config.Config{
		JWTSecretKey:   "test-secret-key",
		JWTExpireHours: 1,
	}
	return NewJWTService(cfg, nil)
}

// TestGenerateAndExtractToken 令牌生成后应能提取出相同的声明
func TestGenerateAndExtractToken(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateToken(42, models.RoleTechnician)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	if token == "" {
		t.Fatal("令牌不应为空")
	}

	claims, err := service.ExtractClaims(token)
	if err != nil {
		t.Fatalf("提取声明失败: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, 期望 42", claims.UserID)
	}
	if claims.Role != models.RoleTechnician {
		t.Errorf("Role = %q, 期望 %q", claims.Role, models.RoleTechnician)
	}
	if claims.Issuer != "upkeep-http-service" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

// TestValidateToken 测试令牌验证
func TestValidateToken(t *testing.T) {
	service := newTestJWTService()

	token, err := service.GenerateToken(1, models.RoleAdmin)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	parsed, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("验证令牌失败: %v", err)
	}
	if !parsed.Valid {
		t.Error("令牌应有效")
	}
}

// TestExtractClaimsInvalidToken 非法令牌应返回错误
func TestExtractClaimsInvalidToken(t *testing.T) {
	service := newTestJWTService()

	if _, err := service.ExtractClaims("not-a-token"); err == nil {
		t.Error("非法令牌应返回错误")
	}

	// 被篡改的令牌
	token, err := service.GenerateToken(1, models.RoleResident)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	if _, err := service.ExtractClaims(token + "x"); err == nil {
		t.Error("被篡改的令牌应返回错误")
	}
}

// TestExtractClaimsWrongSecret 用其他密钥签发的令牌应被拒绝
func TestExtractClaimsWrongSecret(t *testing.T) {
	service := newTestJWTService()

	other := NewJWTService(&config.Config{
		JWTSecretKey:   "another-secret",
		JWTExpireHours: 1,
	}, nil)

	token, err := other.GenerateToken(1, models.RoleResident)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := service.ExtractClaims(token); err == nil {
		t.Error("其他密钥签发的令牌应被拒绝")
	}
}

// TestIsDuplicateKeyError 唯一索引冲突应被识别为邮箱重复
func TestIsDuplicateKeyError(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice@example.com' for key 'users.email'"}

	if !isDuplicateKeyError(dup) {
		t.Error("MySQL 1062错误应被识别为唯一索引冲突")
	}
	if !isDuplicateKeyError(fmt.Errorf("创建用户: %w", dup)) {
		t.Error("包装后的1062错误也应被识别")
	}
	if !isDuplicateKeyError(gorm.ErrDuplicatedKey) {
		t.Error("gorm.ErrDuplicatedKey应被识别")
	}

	if isDuplicateKeyError(&mysql.MySQLError{Number: 1045, Message: "Access denied"}) {
		t.Error("其他MySQL错误不应被识别为唯一索引冲突")
	}
	if isDuplicateKeyError(errors.New("connection refused")) {
		t.Error("普通错误不应被识别为唯一索引冲突")
	}
	if isDuplicateKeyError(nil) {
		t.Error("nil不应被识别为唯一索引冲突")
	}
}

// TestExtractClaimsExpiredToken 过期令牌应被拒绝
func TestExtractClaimsExpiredToken(t *testing.T) {
	service := newTestJWTService()

	// 直接用相同密钥签发一个已过期的令牌
	claims := &JWTClaims{
		UserID: 1,
		Role:   models.RoleResident,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "upkeep-http-service",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key"))
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	if _, err := service.ExtractClaims(signed); err == nil {
		t.Error("过期令牌应被拒绝")
	}
}
