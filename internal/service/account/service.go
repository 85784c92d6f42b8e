package account

import (
	"context"
	"errors"

	"minigames_backend/internal/middleware"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"
)

const (
	defaultBetsLimit = 20
	maxBetsLimit     = 100
)

type serv struct {
	userRepo   repository.UserRepository
	betLogRepo repository.BetLogRepository
}

func NewAccountService(userRepo repository.UserRepository, betLogRepo repository.BetLogRepository) service.AccountService {
	return &serv{
		userRepo:   userRepo,
		betLogRepo: betLogRepo,
	}
}

// Profile текущий пользователь с балансом
func (s *serv) Profile(ctx context.Context) (*model.User, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// Bets последние ставки пользователя, новые первыми
func (s *serv) Bets(ctx context.Context, limit int) ([]model.BetLog, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	return s.betLogRepo.ListByUser(ctx, userID, clampLimit(limit, defaultBetsLimit, maxBetsLimit))
}

func clampLimit(limit, def, upper int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, upper)
}
