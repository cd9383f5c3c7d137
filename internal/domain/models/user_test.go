package models

import (
	"testing"
	"upkeep-http-service/pkg/utils"
)

// TestUserBeforeCreate 创建前密码应被哈希
func TestUserBeforeCreate(t *testing.T) {
	user := &User{
		Email:    "alice@example.com",
		Password: "secret123",
	}

	if err := user.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate失败: %v", err)
	}

	if user.Password == "secret123" {
		t.Error("密码应被哈希")
	}
	if !utils.CheckPasswordHash("secret123", user.Password) {
		t.Error("哈希后应能通过原密码校验")
	}
}

// TestUserBeforeSaveSkipsHashed 已哈希的密码保存时不应被二次哈希
func TestUserBeforeSaveSkipsHashed(t *testing.T) {
	hashed, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}

	user := &User{Password: hashed}
	if err := user.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave失败: %v", err)
	}

	if user.Password != hashed {
		t.Error("已哈希的密码不应被修改")
	}
}

// TestUserCreateHooksHashOnce Create会依次触发BeforeSave和BeforeCreate，
// 明文密码只应被哈希一次
func TestUserCreateHooksHashOnce(t *testing.T) {
	user := &User{
		Email:    "bob@example.com",
		Password: "secret1",
	}

	// 按GORM创建记录时的实际顺序触发钩子
	if err := user.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave失败: %v", err)
	}
	if err := user.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate失败: %v", err)
	}

	if !utils.CheckPasswordHash("secret1", user.Password) {
		t.Error("两个钩子先后执行后原密码应仍能通过校验")
	}
}

// TestUserCreateHooksSkipPrehashed 预先哈希好的密码（默认管理员）创建时不应被再次哈希
func TestUserCreateHooksSkipPrehashed(t *testing.T) {
	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}

	user := &User{
		Email:    "admin@example.com",
		Password: hashed,
		Role:     RoleAdmin,
	}

	if err := user.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave失败: %v", err)
	}
	if err := user.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate失败: %v", err)
	}

	if user.Password != hashed {
		t.Error("已哈希的密码不应被修改")
	}
	if !utils.CheckPasswordHash("admin123", user.Password) {
		t.Error("原密码应仍能通过校验")
	}
}

// TestUserFullName 测试显示姓名
func TestUserFullName(t *testing.T) {
	user := &User{FirstName: "Alice", LastName: "Lee"}
	if user.FullName() != "Alice Lee" {
		t.Errorf("FullName() = %q", user.FullName())
	}
}
