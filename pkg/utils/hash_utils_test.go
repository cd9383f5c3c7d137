package utils

import "testing"

// TestHashPassword 测试密码哈希
func TestHashPassword(t *testing.T) {
	password := "secret123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}

	if hash == password {
		t.Error("哈希结果不应等于明文密码")
	}

	// bcrypt哈希固定为60个字符
	if len(hash) != 60 {
		t.Errorf("哈希长度应为60, 实际为 %d", len(hash))
	}
}

// TestCheckPasswordHash 测试密码校验
func TestCheckPasswordHash(t *testing.T) {
	password := "secret123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}

	if !CheckPasswordHash(password, hash) {
		t.Error("正确密码校验失败")
	}

	if CheckPasswordHash("wrongpassword", hash) {
		t.Error("错误密码不应通过校验")
	}

	if CheckPasswordHash(password, "not-a-bcrypt-hash") {
		t.Error("非法哈希不应通过校验")
	}
}

// TestHashPasswordUnique 相同密码的两次哈希应不同（随机盐）
func TestHashPasswordUnique(t *testing.T) {
	password := "secret123"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}

	if hash1 == hash2 {
		t.Error("两次哈希结果不应相同")
	}
}
