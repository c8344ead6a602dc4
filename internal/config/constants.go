// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "TriviaAPI"
	AppVersion = "1.0.0"
)

// 1ページあたりの問題数 (APIの互換性のため固定)
const QuestionsPerPage = 10

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultAutoMigrate = false
	DefaultCORSMaxAge  = 300
)

var (
	DefaultCORSAllowedOrigins = []string{"*"}
	DefaultCORSAllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	DefaultCORSAllowedHeaders = []string{"Content-Type", "Authorization"}
)
