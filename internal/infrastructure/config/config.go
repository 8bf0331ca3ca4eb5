package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig        `mapstructure:"app"`
	Server      ServerConfig     `mapstructure:"server"`
	Gemini      GeminiConfig     `mapstructure:"gemini"`
	Audio       AudioConfig      `mapstructure:"audio"`
	Ingredient  IngredientConfig `mapstructure:"ingredient"`
	Recipe      RecipeConfig     `mapstructure:"recipe"`
	Cache       CacheConfig      `mapstructure:"cache"`
	Queue       QueueConfig      `mapstructure:"queue"`
	RateLimit   RateLimitConfig  `mapstructure:"rate_limit"`
	DedupWindow time.Duration    `mapstructure:"dedup_window"`
	LogLevel    string           `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// GeminiConfig Gemini API 配置
type GeminiConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	Model        string        `mapstructure:"model"`        // 食譜生成模型
	ExtractModel string        `mapstructure:"extract_model"` // 食材擷取模型（文字與音訊）
	MaxTokens    int           `mapstructure:"max_tokens"`
	TextTimeout  time.Duration `mapstructure:"text_timeout"`  // 文字擷取逾時
	AudioTimeout time.Duration `mapstructure:"audio_timeout"` // 音訊擷取逾時
	MonthlyLimit int64         `mapstructure:"monthly_limit"` // 每月呼叫額度上限
}

// AudioConfig 音訊上傳配置
type AudioConfig struct {
	MinSizeBytes int64 `mapstructure:"min_size_bytes"` // 小於此值視為錄音太短
	MaxSizeBytes int64 `mapstructure:"max_size_bytes"`
}

// IngredientConfig 食材擷取配置
type IngredientConfig struct {
	MaxDetected int `mapstructure:"max_detected"` // 單次擷取的食材數量上限
}

// RecipeConfig 食譜生成配置
type RecipeConfig struct {
	MaxRetries      int           `mapstructure:"max_retries"`
	RetryBackoff    time.Duration `mapstructure:"retry_backoff"`
	DefaultServings int           `mapstructure:"default_servings"`
}

// CacheConfig 緩存配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisEnabled    bool          `mapstructure:"redis_enabled"`
	RedisAddr       string        `mapstructure:"redis_addr"`
}

// QueueConfig 請求隊列設定
type QueueConfig struct {
	Workers int `mapstructure:"workers"`
	MaxSize int `mapstructure:"max_size"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 加載 .env 文件
	if err := godotenv.Load(); err != nil {
		if !strings.Contains(err.Error(), "no such file") {
			return nil, err
		}
	}

	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("gemini.extract_model", "GEMINI_EXTRACT_MODEL")
	viper.BindEnv("gemini.max_tokens", "MODEL_MAX_TOKENS")
	viper.BindEnv("gemini.monthly_limit", "GEMINI_MONTHLY_LIMIT")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.redis_enabled", "CACHE_REDIS_ENABLED")
	viper.BindEnv("cache.redis_addr", "CACHE_REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 添加調試日誌（logger 尚未初始化，改用 fmt.Println）
	fmt.Println("Loading configuration", "gemini_api_key:", maskAPIKey(viper.GetString("gemini.api_key")), "gemini_model:", viper.GetString("gemini.model"))

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "2.0.0")
	viper.SetDefault("app.name", "mood-recipe-api")

	// 伺服器設定
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Gemini 設定
	viper.SetDefault("gemini.model", "gemini-2.0-flash-exp")
	viper.SetDefault("gemini.extract_model", "gemini-2.5-flash-lite")
	viper.SetDefault("gemini.max_tokens", 2048)
	viper.SetDefault("gemini.text_timeout", "15s")
	viper.SetDefault("gemini.audio_timeout", "30s")
	viper.SetDefault("gemini.monthly_limit", 1000)

	// 音訊設定
	viper.SetDefault("audio.min_size_bytes", 5000) // 約 2 秒的錄音
	viper.SetDefault("audio.max_size_bytes", 10*1024*1024)

	// 食材擷取設定
	viper.SetDefault("ingredient.max_detected", 15)

	// 食譜生成設定
	viper.SetDefault("recipe.max_retries", 3)
	viper.SetDefault("recipe.retry_backoff", "1s")
	viper.SetDefault("recipe.default_servings", 2)

	// 快取設定
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("cache.redis_enabled", false)
	viper.SetDefault("cache.redis_addr", "localhost:6379")

	// 隊列設定
	viper.SetDefault("queue.workers", 5)
	viper.SetDefault("queue.max_size", 100)

	// 限流設定
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 去重設定
	viper.SetDefault("dedup_window", "1s")

	viper.SetDefault("log_level", "info")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	// 驗證伺服器設定
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 驗證快取設定
	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	// 驗證隊列設定
	if config.Queue.Workers <= 0 {
		return fmt.Errorf("invalid queue workers")
	}
	if config.Queue.MaxSize <= 0 {
		return fmt.Errorf("invalid queue max size")
	}

	// 驗證音訊設定
	if config.Audio.MinSizeBytes <= 0 || config.Audio.MaxSizeBytes <= config.Audio.MinSizeBytes {
		return fmt.Errorf("invalid audio size limits")
	}

	// 驗證食譜設定
	if config.Recipe.MaxRetries <= 0 {
		return fmt.Errorf("invalid recipe max retries")
	}

	return nil
}
