package models

import (
	"testing"
)

// TestMediaURLsValue 测试附件列表序列化
func TestMediaURLsValue(t *testing.T) {
	urls := MediaURLs{"/uploads/a.jpg", "/uploads/b.mp4"}

	value, err := urls.Value()
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	if string(value.([]byte)) != `["/uploads/a.jpg","/uploads/b.mp4"]` {
		t.Errorf("序列化结果不正确: %s", value)
	}
}

// TestMediaURLsValueNil nil列表序列化为空JSON数组
func TestMediaURLsValueNil(t *testing.T) {
	var urls MediaURLs

	value, err := urls.Value()
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	if string(value.([]byte)) != `[]` {
		t.Errorf("nil列表应序列化为空数组, 实际为: %s", value)
	}
}

// TestMediaURLsScan 测试附件列表反序列化
func TestMediaURLsScan(t *testing.T) {
	var urls MediaURLs
	if err := urls.Scan([]byte(`["/uploads/a.jpg"]`)); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if len(urls) != 1 || urls[0] != "/uploads/a.jpg" {
		t.Errorf("反序列化结果不正确: %v", urls)
	}

	// 字符串形式
	var fromString MediaURLs
	if err := fromString.Scan(`["/uploads/b.mp4","/uploads/c.png"]`); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if len(fromString) != 2 {
		t.Errorf("反序列化结果不正确: %v", fromString)
	}

	// NULL列
	var fromNil MediaURLs
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("反序列化NULL失败: %v", err)
	}
	if fromNil == nil || len(fromNil) != 0 {
		t.Errorf("NULL应反序列化为空列表: %v", fromNil)
	}

	// 不支持的类型
	var fromInt MediaURLs
	if err := fromInt.Scan(42); err == nil {
		t.Error("不支持的类型应返回错误")
	}
}

// TestPriorityRank 紧急程度越高权值越小
func TestPriorityRank(t *testing.T) {
	cases := []struct {
		priority string
		rank     int
	}{
		{PriorityUrgent, 1},
		{PriorityHigh, 2},
		{PriorityMedium, 3},
		{PriorityLow, 4},
		{"unknown", 5},
	}

	for _, c := range cases {
		if got := PriorityRank(c.priority); got != c.rank {
			t.Errorf("PriorityRank(%q) = %d, 期望 %d", c.priority, got, c.rank)
		}
	}

	if PriorityRank(PriorityUrgent) >= PriorityRank(PriorityLow) {
		t.Error("urgent应排在low之前")
	}
}

// TestIsTerminalStatus 只有completed和cancelled是终态
func TestIsTerminalStatus(t *testing.T) {
	for _, status := range []string{StatusCompleted, StatusCancelled} {
		if !IsTerminalStatus(status) {
			t.Errorf("%s 应为终态", status)
		}
	}
	for _, status := range []string{StatusNew, StatusAssigned, StatusInProgress} {
		if IsTerminalStatus(status) {
			t.Errorf("%s 不应为终态", status)
		}
	}
}
