package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all runtime settings of the API. Values are read by viper from
// an optional app.env file or from environment variables, with defaults
// suitable for local development.
type Config struct {
	MongoDBURL   string `mapstructure:"MONGODB_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	Port         string `mapstructure:"PORT"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	CORSOrigins  string `mapstructure:"CORS_ORIGINS"`

	// TxnTimeout bounds every storage transaction; ShutdownTimeout bounds the
	// drain of in-flight requests on exit.
	TxnTimeout      time.Duration `mapstructure:"TXN_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Load reads configuration from app.env in the given path (if present) and the
// environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("MONGODB_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "ecommerce")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("TXN_TIMEOUT", 10*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Origins splits CORS_ORIGINS into a trimmed allow-list.
func (c Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
