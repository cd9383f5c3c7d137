package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"upkeep-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// 搭建带上传中间件的测试路由器，处理函数回显附件URL列表
func setupUploadTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		UploadDir:     t.TempDir(),
		MaxUploadSize: 1024,
		MaxUploadNum:  2,
	}

	r := gin.New()
	r.POST("/upload", FileUpload(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"media_urls": MediaURLsFromContext(c)})
	})

	return r, cfg
}

// 构造multipart请求体
func buildMultipartBody(t *testing.T, filenames []string, size int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("创建表单文件失败: %v", err)
		}
		if _, err := part.Write(bytes.Repeat([]byte("x"), size)); err != nil {
			t.Fatalf("写入文件内容失败: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("关闭multipart写入器失败: %v", err)
	}

	return body, writer.FormDataContentType()
}

// TestFileUploadSavesFiles 上传的文件应落盘并以 /uploads/ 引用返回
func TestFileUploadSavesFiles(t *testing.T) {
	r, cfg := setupUploadTestRouter(t)

	body, contentType := buildMultipartBody(t, []string{"photo.jpg", "clip.mp4"}, 100)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, 期望 200, 响应: %s", w.Code, w.Body.String())
	}

	if !strings.Contains(w.Body.String(), "/uploads/") {
		t.Errorf("响应中应包含 /uploads/ 引用: %s", w.Body.String())
	}

	// 落盘的文件数量应与上传数量一致
	entries, err := os.ReadDir(cfg.UploadDir)
	if err != nil {
		t.Fatalf("读取上传目录失败: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("上传目录中有 %d 个文件, 期望 2 个", len(entries))
	}

	// 存储文件名应保留原始扩展名
	exts := map[string]bool{}
	for _, entry := range entries {
		exts[filepath.Ext(entry.Name())] = true
	}
	if !exts[".jpg"] || !exts[".mp4"] {
		t.Errorf("存储文件应保留扩展名: %v", exts)
	}
}

// TestFileUploadWithoutFiles 无附件的请求应正常放行
func TestFileUploadWithoutFiles(t *testing.T) {
	r, _ := setupUploadTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("title=test"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("状态码 = %d, 期望 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"media_urls":[]`) {
		t.Errorf("无附件时应返回空列表: %s", w.Body.String())
	}
}

// TestFileUploadTooManyFiles 超出数量上限应返回400
func TestFileUploadTooManyFiles(t *testing.T) {
	r, _ := setupUploadTestRouter(t)

	body, contentType := buildMultipartBody(t, []string{"a.jpg", "b.jpg", "c.jpg"}, 10)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
}

// TestFileUploadTooLarge 超出大小上限应返回400
func TestFileUploadTooLarge(t *testing.T) {
	r, _ := setupUploadTestRouter(t)

	body, contentType := buildMultipartBody(t, []string{"big.jpg"}, 2048)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}
}

// TestFileUploadRejectsUnknownExtension 不支持的文件类型应返回400
func TestFileUploadRejectsUnknownExtension(t *testing.T) {
	r, cfg := setupUploadTestRouter(t)

	body, contentType := buildMultipartBody(t, []string{"script.sh"}, 10)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("状态码 = %d, 期望 400", w.Code)
	}

	entries, err := os.ReadDir(cfg.UploadDir)
	if err != nil {
		t.Fatalf("读取上传目录失败: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("被拒绝的文件不应落盘: %d 个文件", len(entries))
	}
}
