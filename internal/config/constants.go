// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "ScribeTreeWriter"
	AppVersion = "0.4.0"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"

	DefaultMaxIdleConns    = 10
	DefaultMaxOpenConns    = 100
	DefaultConnMaxLifetime = time.Hour
	DefaultSlowThreshold   = 500 * time.Millisecond

	DefaultAIProvider        = "gemini"
	DefaultAIModel           = "gemini-2.0-flash"
	DefaultAITemperature     = float32(0.7)
	DefaultAIMaxOutputTokens = int32(200)
	DefaultAITimeout         = 20 * time.Second
	DefaultStaticFallback    = true

	DefaultReflectionHistoryLimit  = 5
	DefaultInteractionHistoryLimit = 10
	DefaultConversationWindow      = 5
	DefaultVersionWindow           = 3
)
