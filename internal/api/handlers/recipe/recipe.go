package recipe

import (
	"errors"
	"net/http"

	recipeService "mood-recipe-api/internal/core/recipe"
	"mood-recipe-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateRequest 食譜生成請求
type GenerateRequest struct {
	Ingredients        []string `json:"ingredients" binding:"required"`
	Mood               string   `json:"mood" binding:"required"`
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	HealthGoals        []string `json:"health_goals,omitempty"`
	CuisinePreference  string   `json:"cuisine_preference,omitempty"`
	Servings           int      `json:"servings,omitempty"`
}

// Handler 食譜處理程序
type Handler struct {
	service *recipeService.Service
}

// NewHandler 創建食譜處理程序
func NewHandler(service *recipeService.Service) *Handler {
	return &Handler{service: service}
}

// HandleGenerate 依食材與心情生成食譜
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	mood, err := recipeService.ParseMood(req.Mood)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("開始處理食譜生成請求",
		zap.String("request_id", requestID),
		zap.String("mood", req.Mood),
		zap.Int("ingredients", len(req.Ingredients)),
	)

	rec, err := h.service.Generate(c.Request.Context(), &recipeService.GenerationRequest{
		Ingredients:        req.Ingredients,
		Mood:               mood,
		DietaryPreferences: req.DietaryPreferences,
		Allergies:          req.Allergies,
		HealthGoals:        req.HealthGoals,
		CuisinePreference:  req.CuisinePreference,
		Servings:           req.Servings,
	})
	if err != nil {
		status := common.HTTPStatus(err)
		code := common.ErrorCode(err)

		message := err.Error()
		var ce *common.CustomError
		if errors.As(err, &ce) {
			message = ce.Message
		}

		if status >= 500 {
			common.LogError("食譜生成失敗",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("code", code),
			)
		} else {
			common.LogWarn("食譜生成請求被拒絕",
				zap.String("request_id", requestID),
				zap.String("code", code),
			)
		}

		c.JSON(status, gin.H{
			"error": message,
			"code":  code,
		})
		return
	}

	common.LogInfo("食譜生成請求完成",
		zap.String("request_id", requestID),
		zap.String("title", rec.Title),
	)
	c.JSON(http.StatusOK, rec)
}
