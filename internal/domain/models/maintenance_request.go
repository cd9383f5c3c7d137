package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// 工单类别
const (
	CategoryPlumbing   = "plumbing"
	CategoryElectrical = "electrical"
	CategoryHVAC       = "hvac"
	CategoryAppliance  = "appliance"
	CategoryGeneral    = "general"
	CategoryEmergency  = "emergency"
)

// 工单优先级
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// 工单状态
const (
	StatusNew        = "new"
	StatusAssigned   = "assigned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// MediaURLs 以JSON数组形式存储的附件引用列表
type MediaURLs []string

// Value 实现driver.Valuer，将附件列表序列化为JSON字符串
func (m MediaURLs) Value() (driver.Value, error) {
	if m == nil {
		m = MediaURLs{}
	}
	return json.Marshal(m)
}

// Scan 实现sql.Scanner，从数据库中反序列化附件列表
func (m *MediaURLs) Scan(value interface{}) error {
	if value == nil {
		*m = MediaURLs{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for media_urls")
	}
}

// MaintenanceRequest represents a resident maintenance ticket
type MaintenanceRequest struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ResidentID   uint       `gorm:"not null;index" json:"resident_id"`
	TechnicianID *uint      `gorm:"index" json:"technician_id"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Category     string     `gorm:"type:varchar(20);not null" json:"category"`
	Priority     string     `gorm:"type:varchar(10);not null;default:medium" json:"priority"`
	Status       string     `gorm:"type:varchar(20);not null;default:new;index" json:"status"`
	MediaURLs    MediaURLs  `gorm:"type:json" json:"media_urls"`
	WorkNotes    string     `gorm:"type:text" json:"work_notes,omitempty"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Resident   *User `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	Technician *User `gorm:"foreignKey:TechnicianID" json:"technician,omitempty"`
}

// PriorityRank 返回优先级的排序权值，urgent最先
func PriorityRank(priority string) int {
	switch priority {
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	default:
		return 5
	}
}

// IsTerminalStatus 判断状态是否为终态
func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}
