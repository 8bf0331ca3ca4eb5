package health

import (
	"net/http"
	"runtime"
	"time"

	aiService "mood-recipe-api/internal/core/ai/service"
	"mood-recipe-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// Response 健康檢查響應
type Response struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	AI        map[string]interface{} `json:"ai"`
	Queue     interface{}            `json:"queue,omitempty"`
}

// Handler 健康檢查處理程序
type Handler struct {
	config    *config.Config
	aiService *aiService.Service
}

// NewHandler 創建健康檢查處理程序
func NewHandler(cfg *config.Config, ai *aiService.Service) *Handler {
	return &Handler{
		config:    cfg,
		aiService: ai,
	}
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := Response{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		AI:    h.aiService.UsageStats(),
		Queue: h.aiService.QueueStatus(),
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器。AI 探測失敗時仍回報 ready，
// 文字擷取有字典降級可用
func (h *Handler) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ready",
		"ai_available": h.aiService.Healthy(),
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
