package auth

import (
	"time"

	"minigames_backend/internal/config"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	jwtConfig    config.JWTConfig
	startBalance decimal.Decimal
	now          func() time.Time
}

// NewAuthService startBalance - баланс нового пользователя
func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	startBalance decimal.Decimal,
) service.AuthService {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		jwtConfig:    jwtConfig,
		startBalance: startBalance,
		now:          time.Now,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
