package services

import (
	"upkeep-http-service/internal/domain/models"
	"upkeep-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceStatsService defines the dashboard statistics service interface
type InterfaceStatsService interface {
	GetDashboardStats(userID uint, role string) (interface{}, error)
}

// AdminStats 管理员看板统计
type AdminStats struct {
	TotalRequests      int64 `json:"total_requests"`
	NewRequests        int64 `json:"new_requests"`
	InProgressRequests int64 `json:"in_progress_requests"`
	CompletedRequests  int64 `json:"completed_requests"`
	TotalTechnicians   int64 `json:"total_technicians"`
	TotalResidents     int64 `json:"total_residents"`
}

// TechnicianStats 技术员看板统计
type TechnicianStats struct {
	AssignedRequests   int64 `json:"assigned_requests"`
	InProgressRequests int64 `json:"in_progress_requests"`
	CompletedToday     int64 `json:"completed_today"`
}

// ResidentStats 居民看板统计
type ResidentStats struct {
	TotalRequests     int64 `json:"total_requests"`
	PendingRequests   int64 `json:"pending_requests"`
	CompletedRequests int64 `json:"completed_requests"`
}

// StatsService 提供看板统计服务，每次调用都直接从数据库重新计算
type StatsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStatsService 创建一个新的看板统计服务
func NewStatsService(db *gorm.DB, cfg *config.Config) InterfaceStatsService {
	return &StatsService{
		DB:     db,
		Config: cfg,
	}
}

// GetDashboardStats 根据调用者角色返回对应范围的统计数据
func (s *StatsService) GetDashboardStats(userID uint, role string) (interface{}, error) {
	switch role {
	case models.RoleAdmin:
		return s.adminStats()
	case models.RoleTechnician:
		return s.technicianStats(userID)
	default:
		return s.residentStats(userID)
	}
}

// adminStats 全局统计
func (s *StatsService) adminStats() (*AdminStats, error) {
	stats := &AdminStats{}

	if err := s.DB.Model(&models.MaintenanceRequest{}).Count(&stats.TotalRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("status = ?", models.StatusNew).
		Count(&stats.NewRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("status IN ?", []string{models.StatusAssigned, models.StatusInProgress}).
		Count(&stats.InProgressRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("status = ?", models.StatusCompleted).
		Count(&stats.CompletedRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.User{}).
		Where("role = ?", models.RoleTechnician).
		Count(&stats.TotalTechnicians).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.User{}).
		Where("role = ?", models.RoleResident).
		Count(&stats.TotalResidents).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// technicianStats 技术员本人的工单统计
func (s *StatsService) technicianStats(technicianID uint) (*TechnicianStats, error) {
	stats := &TechnicianStats{}

	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("technician_id = ? AND status = ?", technicianID, models.StatusAssigned).
		Count(&stats.AssignedRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("technician_id = ? AND status = ?", technicianID, models.StatusInProgress).
		Count(&stats.InProgressRequests).Error; err != nil {
		return nil, err
	}
	// 当天完成的工单数，按完成时间的日历日计算
	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("technician_id = ? AND status = ? AND DATE(completed_at) = CURDATE()",
			technicianID, models.StatusCompleted).
		Count(&stats.CompletedToday).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// residentStats 居民本人的工单统计
func (s *StatsService) residentStats(residentID uint) (*ResidentStats, error) {
	stats := &ResidentStats{}

	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("resident_id = ?", residentID).
		Count(&stats.TotalRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("resident_id = ? AND status IN ?", residentID,
			[]string{models.StatusNew, models.StatusAssigned, models.StatusInProgress}).
		Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.MaintenanceRequest{}).
		Where("resident_id = ? AND status = ?", residentID, models.StatusCompleted).
		Count(&stats.CompletedRequests).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
