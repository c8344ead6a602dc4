// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database struct {
		URL         string `mapstructure:"url"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS CORSConfig `mapstructure:"cors"`
}

var Cfg Config

// BindFlags はコマンドラインフラグを viper のキーに紐付けます。
// LoadConfig より前に呼び出してください。
func BindFlags(fs *pflag.FlagSet) error {
	if f := fs.Lookup("port"); f != nil {
		if err := viper.BindPFlag("server.port", f); err != nil {
			return err
		}
	}
	if f := fs.Lookup("database-url"); f != nil {
		if err := viper.BindPFlag("database.url", f); err != nil {
			return err
		}
	}
	return nil
}

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP") // 例: APP_SERVER_PORT
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("log.level", "LOG_LEVEL")

	viper.SetDefault("database.auto_migrate", DefaultAutoMigrate)
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("cors.allowed_origins", DefaultCORSAllowedOrigins)
	viper.SetDefault("cors.allowed_methods", DefaultCORSAllowedMethods)
	viper.SetDefault("cors.allowed_headers", DefaultCORSAllowedHeaders)
	viper.SetDefault("cors.allow_credentials", true)
	viper.SetDefault("cors.max_age", DefaultCORSMaxAge)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auto Migrate: %t", Cfg.Database.AutoMigrate)

	return nil
}
