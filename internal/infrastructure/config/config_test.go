package config

import "testing"

// TestLoadConfigMaxUploadSize 测试上传大小上限的解析
func TestLoadConfigMaxUploadSize(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "2097152")

	cfg := LoadConfig()
	if cfg.MaxUploadSize != 2097152 {
		t.Errorf("MaxUploadSize = %d, 期望 2097152", cfg.MaxUploadSize)
	}
}

// TestLoadConfigMaxUploadSizeInvalid 非法值应回退到10MB默认值而不是0
func TestLoadConfigMaxUploadSizeInvalid(t *testing.T) {
	cases := []string{"not-a-number", "", "-1", "0"}

	for _, value := range cases {
		t.Setenv("MAX_UPLOAD_SIZE", value)

		cfg := LoadConfig()
		if cfg.MaxUploadSize != 10485760 {
			t.Errorf("MAX_UPLOAD_SIZE=%q: MaxUploadSize = %d, 期望默认值 10485760",
				value, cfg.MaxUploadSize)
		}
	}
}

// TestLoadConfigDefaults 未设置环境变量时应使用默认值
func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.MaxUploadNum != 5 {
		t.Errorf("MaxUploadNum = %d, 期望 5", cfg.MaxUploadNum)
	}
	if cfg.JWTExpireHours != 24 {
		t.Errorf("JWTExpireHours = %d, 期望 24", cfg.JWTExpireHours)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q, 期望 uploads", cfg.UploadDir)
	}
}
