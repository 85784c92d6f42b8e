package repository

import (
	"context"
	"errors"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyExists       = errors.New("already exists")
)

// Psql билдер запросов с плейсхолдерами $1, $2 для postgres
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	// GetBalanceForUpdate блокирует строку пользователя до конца транзакции
	GetBalanceForUpdate(ctx context.Context, id int) (decimal.Decimal, error)
	// Debit списывает amount, если хватает средств. Возвращает новый баланс
	Debit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
	// Credit начисляет amount. Возвращает новый баланс
	Credit(ctx context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type BlackjackRepository interface {
	GetRound(ctx context.Context, userID int) (*model.BlackjackRound, error)
	SaveRound(ctx context.Context, round *model.BlackjackRound) error
	DeleteRound(ctx context.Context, userID int) error
}

type BetLogRepository interface {
	Create(ctx context.Context, log *model.BetLog) error
	ListByUser(ctx context.Context, userID int, limit int) ([]model.BetLog, error)
}

type LeaderboardRepository interface {
	// Record учитывает завершенный раунд. Вызывается после коммита
	Record(ctx context.Context, log model.BetLog) error
	// Top игроки по прибыли. Пустая игра - по всем играм
	Top(ctx context.Context, game engine.GameType, limit int) ([]model.LeaderboardEntry, error)
}

type StatsRepository interface {
	UpdateState(game engine.GameType, staked, returned decimal.Decimal)
	Snapshot(game engine.GameType) model.HouseStats
}
