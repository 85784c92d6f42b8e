package env

import (
	"os"

	"minigames_backend/internal/config"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	appEnvEnvName   = "APP_ENV"

	defaultLogLevel = "info"
)

type logConfig struct {
	level string
	env   string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if level == "" {
		level = defaultLogLevel
	}
	return &logConfig{
		level: level,
		env:   os.Getenv(appEnvEnvName),
	}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

// Development консольный вывод вместо JSON
func (cfg *logConfig) Development() bool {
	return cfg.env == "dev" || cfg.env == "local"
}
