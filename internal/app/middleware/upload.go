package middleware

import (
	"path/filepath"
	"strings"
	"upkeep-http-service/internal/error/code"
	"upkeep-http-service/internal/error/response"
	"upkeep-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 上下文中存储附件URL列表的键
const MediaURLsKey = "mediaURLs"

// 允许上传的文件扩展名（图片和视频）
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".mov":  true,
	".avi":  true,
}

// FileUpload 将multipart请求中的附件保存到本地磁盘，
// 控制器只能看到 /uploads/<名称> 形式的引用
func FileUpload(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			// 没有附件的multipart请求也是合法的
			c.Set(MediaURLsKey, []string{})
			c.Next()
			return
		}

		files := form.File["files"]
		if len(files) > cfg.MaxUploadNum {
			response.Fail(c, code.ErrUploadTooMany, gin.H{"max_files": cfg.MaxUploadNum})
			c.Abort()
			return
		}

		mediaURLs := make([]string, 0, len(files))
		for _, file := range files {
			if file.Size > cfg.MaxUploadSize {
				response.Fail(c, code.ErrUploadTooLarge, gin.H{"max_size": cfg.MaxUploadSize})
				c.Abort()
				return
			}

			ext := strings.ToLower(filepath.Ext(file.Filename))
			if !allowedExtensions[ext] {
				response.FailWithMessage(c, code.ErrValidation, "不支持的文件类型: "+ext, nil)
				c.Abort()
				return
			}

			// 使用UUID生成存储文件名，避免与已有文件冲突
			storedName := uuid.NewString() + ext
			dst := filepath.Join(cfg.UploadDir, storedName)
			if err := c.SaveUploadedFile(file, dst); err != nil {
				response.Fail(c, code.ErrUploadFailed, nil)
				c.Abort()
				return
			}

			mediaURLs = append(mediaURLs, "/uploads/"+storedName)
		}

		c.Set(MediaURLsKey, mediaURLs)
		c.Next()
	}
}

// MediaURLsFromContext 从上下文中读取附件URL列表
func MediaURLsFromContext(c *gin.Context) []string {
	if urls, exists := c.Get(MediaURLsKey); exists {
		if list, ok := urls.([]string); ok {
			return list
		}
	}
	return []string{}
}
