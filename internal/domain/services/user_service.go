package services

import (
	"errors"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	GetUserByID(id uint) (*models.User, error)
	GetTechnicians() ([]models.User, error)
}

// UserService 提供用户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}
	return &user, nil
}

// 2 GetTechnicians 获取所有技术员，按姓名排序
func (s *UserService) GetTechnicians() ([]models.User, error) {
	var technicians []models.User
	if err := s.DB.Where("role = ?", models.RoleTechnician).
		Order("first_name, last_name").
		Find(&technicians).Error; err != nil {
		return nil, err
	}
	return technicians, nil
}
