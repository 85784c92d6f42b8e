package config

import (
	"time"

	"minigames_backend/internal/engine"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GamesConfig правила игр из config.yaml
type GamesConfig interface {
	Rules() engine.Rules
	StartBalance() decimal.Decimal
	StatsWindow() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// RedisConfig пустой Addr - redis не используется
type RedisConfig interface {
	Addr() string
	Password() string
	DB() int
}

type LogConfig interface {
	Level() string
	Development() bool
}
