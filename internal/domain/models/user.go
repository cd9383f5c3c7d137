package models

import (
	"time"
	"upkeep-http-service/pkg/utils"

	"gorm.io/gorm"
)

// 用户角色
const (
	RoleResident   = "resident"
	RoleTechnician = "technician"
	RoleAdmin      = "admin"
)

// User represents a registered account: resident, technician or admin
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"type:varchar(100);not null" json:"-"` // 不在JSON中暴露密码
	FirstName       string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName        string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Role            string    `gorm:"type:varchar(20);not null;default:resident" json:"role"`
	PhoneNumber     string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	ApartmentNumber string    `gorm:"type:varchar(20)" json:"apartment_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Requests         []MaintenanceRequest `gorm:"foreignKey:ResidentID" json:"requests,omitempty"`
	AssignedRequests []MaintenanceRequest `gorm:"foreignKey:TechnicianID" json:"assigned_requests,omitempty"`
}

// BeforeCreate 是一个GORM钩子，在创建新记录前运行。
// Create会先后触发BeforeSave和BeforeCreate，两处都必须跳过已哈希的密码，
// 否则密码会被二次哈希导致登录永远失败
func (u *User) BeforeCreate(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// BeforeSave 是一个GORM钩子，在保存记录前运行
func (u *User) BeforeSave(tx *gorm.DB) error {
	// 如果提供了密码且不是已哈希的，对其进行哈希处理
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// FullName 返回用户的显示姓名
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
