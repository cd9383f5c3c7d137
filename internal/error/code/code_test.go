package code

import "testing"

// TestGetMessage 测试错误码消息查询
func TestGetMessage(t *testing.T) {
	if GetMessage(ErrSuccess) != "成功" {
		t.Errorf("GetMessage(ErrSuccess) = %q", GetMessage(ErrSuccess))
	}
	if GetMessage(ErrInvalidCredentials) != "邮箱或密码错误" {
		t.Errorf("GetMessage(ErrInvalidCredentials) = %q", GetMessage(ErrInvalidCredentials))
	}
	if GetMessage(-1) != "未知错误" {
		t.Errorf("未注册错误码应返回未知错误: %q", GetMessage(-1))
	}
}

// TestGetStatus 测试错误码到HTTP状态码的映射
func TestGetStatus(t *testing.T) {
	cases := []struct {
		code   int
		status int
	}{
		{ErrSuccess, StatusOK},
		{ErrBind, StatusBadRequest},
		{ErrTokenInvalid, StatusUnauthorized},
		{ErrPermissionDenied, StatusForbidden},
		{ErrTooManyRequests, StatusTooManyRequests},
		{ErrUserAlreadyExist, StatusConflict},
		{ErrInvalidCredentials, StatusUnauthorized},
		{ErrRequestNotFound, StatusNotFound},
		{ErrRequestNotAssigned, StatusForbidden},
		{ErrNotRequestOwner, StatusForbidden},
		{ErrDatabase, StatusInternalServerError},
	}

	for _, c := range cases {
		if got := GetStatus(c.code); got != c.status {
			t.Errorf("GetStatus(%d) = %d, 期望 %d", c.code, got, c.status)
		}
	}

	if GetStatus(-1) != StatusInternalServerError {
		t.Error("未注册错误码应映射到500")
	}
}
