// internal/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// AIConfig は文章生成サービス (Gemini) への接続設定
type AIConfig struct {
	Provider        string        `mapstructure:"provider"` // "gemini" または "static"
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"`
	Temperature     float32       `mapstructure:"temperature"`
	MaxOutputTokens int32         `mapstructure:"max_output_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
	StaticFallback  bool          `mapstructure:"static_fallback"`
}

// AppConfig はアプリケーション固有の値
type AppConfig struct {
	ReflectionHistoryLimit  int `mapstructure:"reflection_history_limit"`
	InteractionHistoryLimit int `mapstructure:"interaction_history_limit"`
	ConversationWindow      int `mapstructure:"conversation_window"`
	VersionWindow           int `mapstructure:"version_window"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	AI       AIConfig       `mapstructure:"ai"`
	App      AppConfig      `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// 例: APP_DATABASE_URL, APP_AI_API_KEY
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("ai.api_key", "GEMINI_API_KEY")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// auth.enabled は未設定なら有効にする
	if !v.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	if !v.IsSet("ai.static_fallback") {
		cfg.AI.StaticFallback = DefaultStaticFallback
	}
	ApplyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("AI Provider: %s (model=%s)", Cfg.AI.Provider, Cfg.AI.Model)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

// ApplyDefaults は未設定・不正な値をデフォルトで埋める
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = DefaultMaxIdleConns
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Database.ConnMaxLifetime <= 0 {
		cfg.Database.ConnMaxLifetime = DefaultConnMaxLifetime
	}
	if cfg.Database.SlowThreshold <= 0 {
		cfg.Database.SlowThreshold = DefaultSlowThreshold
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = DefaultAIProvider
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultAIModel
	}
	if cfg.AI.Temperature <= 0 {
		cfg.AI.Temperature = DefaultAITemperature
	}
	if cfg.AI.MaxOutputTokens <= 0 {
		cfg.AI.MaxOutputTokens = DefaultAIMaxOutputTokens
	}
	if cfg.AI.Timeout <= 0 {
		cfg.AI.Timeout = DefaultAITimeout
	}
	if cfg.App.ReflectionHistoryLimit <= 0 {
		cfg.App.ReflectionHistoryLimit = DefaultReflectionHistoryLimit
	}
	if cfg.App.InteractionHistoryLimit <= 0 {
		cfg.App.InteractionHistoryLimit = DefaultInteractionHistoryLimit
	}
	if cfg.App.ConversationWindow <= 0 {
		cfg.App.ConversationWindow = DefaultConversationWindow
	}
	if cfg.App.VersionWindow <= 0 {
		cfg.App.VersionWindow = DefaultVersionWindow
	}
}
