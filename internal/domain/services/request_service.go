package services

import (
	"errors"
	"time"
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// 技术员视角的工单排序：紧急程度优先，同级按创建时间先后
const technicianOrderClause = "CASE priority " +
	"WHEN 'urgent' THEN 1 " +
	"WHEN 'high' THEN 2 " +
	"WHEN 'medium' THEN 3 " +
	"WHEN 'low' THEN 4 " +
	"ELSE 5 END, created_at ASC"

// InterfaceRequestService defines the maintenance request service interface
type InterfaceRequestService interface {
	CreateRequest(request *models.MaintenanceRequest) (*models.MaintenanceRequest, error)
	GetRequestByID(id uint) (*models.MaintenanceRequest, error)
	GetRequestsByResident(residentID uint) ([]models.MaintenanceRequest, error)
	GetRequestsByTechnician(technicianID uint) ([]models.MaintenanceRequest, error)
	UpdateStatus(requestID, callerID uint, callerRole, status, workNotes string) (*models.MaintenanceRequest, error)
	GetAllRequests(page, limit int, status, category string) ([]models.MaintenanceRequest, int64, error)
	AssignTechnician(requestID, technicianID uint) (*models.MaintenanceRequest, error)
}

// RequestService 提供维修工单相关的服务
type RequestService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRequestService 创建一个新的维修工单服务
func NewRequestService(db *gorm.DB, cfg *config.Config) InterfaceRequestService {
	return &RequestService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateRequest 创建新的维修工单
func (s *RequestService) CreateRequest(request *models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	if request.Priority == "" {
		request.Priority = models.PriorityMedium
	}
	request.Status = models.StatusNew
	if request.MediaURLs == nil {
		request.MediaURLs = models.MediaURLs{}
	}

	if err := s.DB.Create(request).Error; err != nil {
		return nil, err
	}

	// 重新加载工单并附带居民展示信息
	return s.GetRequestByID(request.ID)
}

// 2 GetRequestByID 根据ID获取工单
func (s *RequestService) GetRequestByID(id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	if err := s.DB.Preload("Resident").Preload("Technician").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("维修工单不存在")
		}
		return nil, err
	}
	return &request, nil
}

// 3 GetRequestsByResident 获取某个居民的所有工单，按创建时间倒序
func (s *RequestService) GetRequestsByResident(residentID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	if err := s.DB.Preload("Resident").Preload("Technician").
		Where("resident_id = ?", residentID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// 4 GetRequestsByTechnician 获取分配给某个技术员的所有工单，按优先级排序
func (s *RequestService) GetRequestsByTechnician(technicianID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	if err := s.DB.Preload("Resident").
		Where("technician_id = ?", technicianID).
		Order(technicianOrderClause).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// 5 UpdateStatus 更新工单状态，技术员只能操作分配给自己的工单
func (s *RequestService) UpdateStatus(requestID, callerID uint, callerRole, status, workNotes string) (*models.MaintenanceRequest, error) {
	// 读取和更新放在同一事务中，避免与并发的重新分配竞争
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var request models.MaintenanceRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("维修工单不存在")
			}
			return err
		}

		// 技术员只能更新分配给自己的工单，管理员不受此限制
		if callerRole == models.RoleTechnician {
			if request.TechnicianID == nil || *request.TechnicianID != callerID {
				return errors.New("该工单未分配给当前技术员")
			}
		}

		updates := map[string]interface{}{
			"status": status,
		}
		if workNotes != "" {
			updates["work_notes"] = workNotes
		}
		// 只在进入completed状态时盖完成时间戳，其他状态保持原值
		if status == models.StatusCompleted {
			updates["completed_at"] = time.Now()
		}

		return tx.Model(&request).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetRequestByID(requestID)
}

// 6 GetAllRequests 分页获取所有工单，支持按状态和类别过滤
func (s *RequestService) GetAllRequests(page, limit int, status, category string) ([]models.MaintenanceRequest, int64, error) {
	var requests []models.MaintenanceRequest
	var total int64

	query := s.DB.Model(&models.MaintenanceRequest{})

	// 过滤条件为合取：同时给定状态和类别时两者都生效
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * limit
	if err := query.Preload("Resident").Preload("Technician").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// 7 AssignTechnician 将工单分配给技术员，并强制状态为assigned
func (s *RequestService) AssignTechnician(requestID, technicianID uint) (*models.MaintenanceRequest, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 验证技术员是否存在且角色正确
		var count int64
		if err := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", technicianID, models.RoleTechnician).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errors.New("无效的技术员ID")
		}

		var request models.MaintenanceRequest
		if err := tx.First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("维修工单不存在")
			}
			return err
		}

		return tx.Model(&request).Updates(map[string]interface{}{
			"technician_id": technicianID,
			"status":        models.StatusAssigned,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetRequestByID(requestID)
}
