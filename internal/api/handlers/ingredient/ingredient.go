package ingredient

import (
	"errors"
	"io"
	"net/http"

	ingredientService "mood-recipe-api/internal/core/ingredient"
	"mood-recipe-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExtractTextRequest 文字擷取請求
type ExtractTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ValidateRequest 食材驗證請求
type ValidateRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}

// Handler 食材處理程序
type Handler struct {
	extractor *ingredientService.Extractor
	validator *ingredientService.Validator
}

// NewHandler 創建食材處理程序
func NewHandler(extractor *ingredientService.Extractor, validator *ingredientService.Validator) *Handler {
	return &Handler{
		extractor: extractor,
		validator: validator,
	}
}

// HandleExtractFromText 從文字描述擷取食材
func (h *Handler) HandleExtractFromText(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ExtractTextRequest
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

	result, err := h.extractor.ExtractFromText(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, requestID, err)
		return
	}

	common.LogInfo("文字食材擷取完成",
		zap.String("request_id", requestID),
		zap.Int("count", len(result.Ingredients)),
		zap.Int64("processing_time_ms", result.ProcessingTimeMS),
	)
	c.JSON(http.StatusOK, result)
}

// HandleExtractFromAudio 從上傳的錄音擷取食材，
// 音訊以 multipart 的 file 欄位上傳
func (h *Handler) HandleExtractFromAudio(c *gin.Context) {
	requestID := ensureRequestID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.LogWarn("缺少音訊檔案",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing audio file",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, requestID, common.WrapError(common.ErrInternalError, err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(c, requestID, common.WrapError(common.ErrInternalError, err))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")

	result, err := h.extractor.ExtractFromAudio(c.Request.Context(), audio, mimeType)
	if err != nil {
		respondError(c, requestID, err)
		return
	}

	common.LogInfo("音訊食材擷取完成",
		zap.String("request_id", requestID),
		zap.Int("count", len(result.Ingredients)),
		zap.Int("audio_size", len(audio)),
		zap.Int64("processing_time_ms", result.ProcessingTimeMS),
	)
	c.JSON(http.StatusOK, result)
}

// HandleValidate 將食材名稱正規化為標準名稱
func (h *Handler) HandleValidate(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	result := h.validator.Validate(req.Ingredients)

	common.LogInfo("食材驗證完成",
		zap.String("request_id", requestID),
		zap.Int("count", len(result.ValidatedIngredients)),
		zap.Int("suggestions", len(result.Suggestions)),
	)
	c.JSON(http.StatusOK, result)
}

// ensureRequestID 確保回應帶有請求 ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// respondError 將領域錯誤轉成對應的 HTTP 回應
func respondError(c *gin.Context, requestID string, err error) {
	status := common.HTTPStatus(err)
	code := common.ErrorCode(err)

	message := err.Error()
	var ce *common.CustomError
	if errors.As(err, &ce) {
		message = ce.Message
	}

	if status >= 500 {
		common.LogError("食材請求處理失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("code", code),
		)
	} else {
		common.LogWarn("食材請求被拒絕",
			zap.String("request_id", requestID),
			zap.String("code", code),
		)
	}

	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}
