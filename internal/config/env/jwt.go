package env

import (
	"fmt"
	"os"
	"time"

	"minigames_backend/internal/config"
)

const (
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"

	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 30 * 24 * time.Hour
)

type jwtConfig struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTConfig секрет обязателен, время жизни токенов по умолчанию 15m и 720h
func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(accessTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("%s is not set", accessTokenKeyEnvName)
	}

	accessTTL, err := durationFromEnv(accessTokenDurationEnvName, defaultAccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := durationFromEnv(refreshTokenDurationEnvName, defaultRefreshTokenDuration)
	if err != nil {
		return nil, err
	}

	// access токен выдается по refresh, короче его он быть не может
	if refreshTTL <= accessTTL {
		return nil, fmt.Errorf("%s (%s) must be longer than %s (%s)",
			refreshTokenDurationEnvName, refreshTTL, accessTokenDurationEnvName, accessTTL)
	}

	return &jwtConfig{
		secretKey:  []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

func durationFromEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return d, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return j.secretKey
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTTL
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshTTL
}
