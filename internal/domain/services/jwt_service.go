package services

import (
	"errors"
	"fmt"
	"time"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/infrastructure/config"
	"upkeep-http-service/pkg/utils"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// MySQL唯一索引冲突的错误码
const mysqlDuplicateEntry = 1062

// isDuplicateKeyError 判断错误是否为唯一索引冲突
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(userID uint, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Login(email, password string) (*AuthResult, error)
	Register(user *models.User) (*AuthResult, error)
}

// AuthResult 表示注册或登录成功后返回的数据
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey   string
	issuer      string
	expireHours int
	DB          *gorm.DB
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	expireHours := cfg.JWTExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	return &JWTService{
		secretKey:   cfg.JWTSecretKey,
		issuer:      "upkeep-http-service",
		expireHours: expireHours,
		DB:          db,
	}
}

// GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(userID uint, role string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.expireHours) * time.Hour)

	claims := &JWTClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims 从令牌中提取声明
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		jwtClaims := &JWTClaims{}

		// 提取用户ID
		if userID, ok := claims["user_id"].(float64); ok {
			jwtClaims.UserID = uint(userID)
		}

		// 提取角色
		if role, ok := claims["role"].(string); ok {
			jwtClaims.Role = role
		}

		// 提取签发者
		if issuer, ok := claims["iss"].(string); ok {
			jwtClaims.Issuer = issuer
		}

		return jwtClaims, nil
	}

	return nil, errors.New("invalid token claims")
}

// Login 处理用户登录请求
func (s *JWTService) Login(email, password string) (*AuthResult, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// 不区分"邮箱不存在"和"密码错误"，避免账号枚举
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("邮箱或密码错误")
		}
		return nil, err
	}

	// 比较密码
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("邮箱或密码错误")
	}

	token, err := s.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token: token,
		User:  &user,
	}, nil
}

// Register 处理用户注册请求
func (s *JWTService) Register(user *models.User) (*AuthResult, error) {
	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("该邮箱已被注册")
	}

	// 管理员账户不允许通过注册接口创建
	if user.Role != models.RoleResident && user.Role != models.RoleTechnician {
		return nil, errors.New("无效的用户角色")
	}

	// 密码哈希由User模型的BeforeCreate钩子处理
	if err := s.DB.Create(user).Error; err != nil {
		// 并发注册可能绕过上面的计数检查，唯一索引冲突同样按邮箱重复处理
		if isDuplicateKeyError(err) {
			return nil, errors.New("该邮箱已被注册")
		}
		return nil, err
	}

	token, err := s.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token: token,
		User:  user,
	}, nil
}
