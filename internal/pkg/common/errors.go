package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 支援 errors.Is / errors.As
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼判斷是否為同一類錯誤
func (e *CustomError) Is(target error) bool {
	var ce *CustomError
	if errors.As(target, &ce) {
		return e.Code == ce.Code
	}
	return false
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WrapError 以預定義錯誤為模板包裝底層錯誤
func WrapError(base *CustomError, err error) *CustomError {
	return &CustomError{
		Code:    base.Code,
		Message: base.Message,
		Status:  base.Status,
		Err:     err,
	}
}

// HTTPStatus 取得錯誤對應的 HTTP 狀態碼，非 CustomError 一律回 500
func HTTPStatus(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Status
	}
	return http.StatusInternalServerError
}

// ErrorCode 取得錯誤代碼，非 CustomError 回傳 INTERNAL_ERROR
func ErrorCode(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrCodeInternalError
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeUnauthorized     = "UNAUTHORIZED"       // 401
	ErrCodeForbidden        = "FORBIDDEN"          // 403
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeConflict         = "CONFLICT"           // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeNotImplemented     = "NOT_IMPLEMENTED"     // 501
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "未授權的訪問", http.StatusUnauthorized, nil)
	ErrForbidden        = NewError(ErrCodeForbidden, "禁止訪問", http.StatusForbidden, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "不支持的請求方法", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrConflict         = NewError(ErrCodeConflict, "資源衝突", http.StatusConflict, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrNotImplemented     = NewError(ErrCodeNotImplemented, "功能未實現", http.StatusNotImplemented, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "服務暫時不可用", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "網關超時", http.StatusGatewayTimeout, nil)

	// 食材擷取錯誤
	ErrInputTooShort          = NewError("INPUT_TOO_SHORT", "輸入文字太短", http.StatusBadRequest, nil)
	ErrAudioTooShort          = NewError("AUDIO_TOO_SHORT", "音訊檔案太小，請錄製至少 2 秒", http.StatusBadRequest, nil)
	ErrAudioTooLarge          = NewError("AUDIO_TOO_LARGE", "音訊檔案超出大小限制", http.StatusBadRequest, nil)
	ErrAudioProcessingTimeout = NewError("AUDIO_PROCESSING_TIMEOUT", "音訊處理超時，請嘗試較短的錄音", http.StatusGatewayTimeout, nil)

	// 食譜生成錯誤
	ErrNoIngredients          = NewError("NO_INGREDIENTS", "至少需要一項食材", http.StatusBadRequest, nil)
	ErrOracleUnavailable      = NewError("AI_SERVICE_UNAVAILABLE", "AI 服務不可用，請檢查 API 設定", http.StatusServiceUnavailable, nil)
	ErrRecipeParse            = NewError("RECIPE_PARSE_ERROR", "無法解析 AI 回應的食譜", http.StatusInternalServerError, nil)
	ErrRecipeIncomplete       = NewError("RECIPE_INCOMPLETE", "食譜缺少必要欄位", http.StatusInternalServerError, nil)
	ErrRecipeGenerationFailed = NewError("RECIPE_GENERATION_FAILED", "食譜生成失敗，請稍後再試", http.StatusInternalServerError, nil)

	// AI 服務錯誤
	ErrAIServiceError   = NewError("AI_SERVICE_ERROR", "AI 服務錯誤", http.StatusServiceUnavailable, nil)
	ErrQuotaExceeded    = NewError("QUOTA_EXCEEDED", "AI 服務額度已用盡", http.StatusServiceUnavailable, nil)
	ErrCacheFull        = NewError("CACHE_FULL", "緩存已滿", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled    = NewError("CACHE_DISABLED", "緩存已禁用", http.StatusServiceUnavailable, nil)
	ErrQueueFull        = NewError("QUEUE_FULL", "請求隊列已滿", http.StatusServiceUnavailable, nil)
	ErrInvalidAudioType = NewError("INVALID_AUDIO_TYPE", "不支持的音訊類型", http.StatusBadRequest, nil)
)
