package service

import (
	"context"
	"errors"

	"minigames_backend/internal/model"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrLoginTaken          = errors.New("login already taken")
	ErrUnknownGame         = errors.New("unknown game")
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// AccountService данные текущего пользователя (ID берется из контекста)
type AccountService interface {
	Profile(ctx context.Context) (*model.User, error)
	Bets(ctx context.Context, limit int) ([]model.BetLog, error)
}

type BlackjackService interface {
	Deal(ctx context.Context, req model.BlackjackDeal) (*model.BlackjackView, error)
	Hit(ctx context.Context) (*model.BlackjackView, error)
	Stand(ctx context.Context) (*model.BlackjackView, error)
	Round(ctx context.Context) (*model.BlackjackView, error)
}

type RouletteService interface {
	Spin(ctx context.Context, req model.RouletteSpin) (*model.RouletteSpinResult, error)
}

type SlotService interface {
	Spin(ctx context.Context, req model.SlotSpin) (*model.SlotSpinResult, error)
}

type LeaderboardService interface {
	Top(ctx context.Context, game string, limit int) ([]model.LeaderboardEntry, error)
	HouseStats(ctx context.Context, game string) (*model.HouseStats, error)
}
