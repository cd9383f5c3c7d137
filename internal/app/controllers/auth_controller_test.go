package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"upkeep-http-service/internal/app/middleware"
	"upkeep-http-service/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// 记录调用的Redis服务桩实现
type fakeRedisService struct {
	invalidated bool
}

func (f *fakeRedisService) Set(key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (f *fakeRedisService) Get(key string, dest interface{}) error {
	return nil
}

func (f *fakeRedisService) Delete(key string) error {
	return nil
}

func (f *fakeRedisService) Ping() error {
	return nil
}

func (f *fakeRedisService) CacheTechnicians(technicians []models.User, expiration time.Duration) error {
	return nil
}

func (f *fakeRedisService) GetCachedTechnicians() ([]models.User, error) {
	return nil, nil
}

func (f *fakeRedisService) InvalidateTechnicians() error {
	f.invalidated = true
	return nil
}

// TestPurgeTechnicianDirectory 技术员名单变化后应同时清除Redis目录缓存和响应缓存
func TestPurgeTechnicianDirectory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware.PurgeCache()

	// 先往响应缓存里放一个技术员目录条目
	r := gin.New()
	r.GET("/users/technicians", middleware.Cache(middleware.CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"technicians": []string{}})
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/technicians", nil)
	r.ServeHTTP(w, req)

	if total := middleware.CacheStats()["total_items"].(int); total != 1 {
		t.Fatalf("响应缓存中应有1个条目, 实际 %d", total)
	}

	fake := &fakeRedisService{}
	purgeTechnicianDirectory(fake)

	if !fake.invalidated {
		t.Error("应清除Redis中的技术员目录缓存")
	}
	if total := middleware.CacheStats()["total_items"].(int); total != 0 {
		t.Errorf("响应缓存应被清空, 实际还有 %d 个条目", total)
	}
}
