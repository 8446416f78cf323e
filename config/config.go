package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort     string
	GinMode        string
	MaxFileSize    int64
	MetricsEnabled bool
}

// LoadConfig reads settings from GASBILL_* environment variables.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("GASBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("metrics.enabled", true)

	maxFileSizeMB := v.GetInt64("upload.max_file_size_mb")
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = 10
	}

	return &Config{
		ServerPort:     strings.TrimPrefix(v.GetString("server.port"), ":"),
		GinMode:        v.GetString("server.gin_mode"),
		MaxFileSize:    maxFileSizeMB << 20,
		MetricsEnabled: v.GetBool("metrics.enabled"),
	}
}
