package wager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger общие шаги любой ставки: списание, начисление, запись в историю.
// PlaceStake и Settle вызываются внутри транзакции, Publish - после коммита
type Ledger struct {
	userRepo        repository.UserRepository
	betLogRepo      repository.BetLogRepository
	statsRepo       repository.StatsRepository
	leaderboardRepo repository.LeaderboardRepository
	log             *zap.Logger
	now             func() time.Time
}

func NewLedger(
	userRepo repository.UserRepository,
	betLogRepo repository.BetLogRepository,
	statsRepo repository.StatsRepository,
	leaderboardRepo repository.LeaderboardRepository,
	log *zap.Logger,
) *Ledger {
	return &Ledger{
		userRepo:        userRepo,
		betLogRepo:      betLogRepo,
		statsRepo:       statsRepo,
		leaderboardRepo: leaderboardRepo,
		log:             log,
		now:             time.Now,
	}
}

// PlaceStake блокирует баланс, проверяет ставку и списывает ее.
// Возвращает баланс после списания
func (l *Ledger) PlaceStake(ctx context.Context, userID int, stake, minBet decimal.Decimal) (decimal.Decimal, error) {
	balance, err := l.userRepo.GetBalanceForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decimal.Zero, service.ErrUnauthorized
		}
		return decimal.Zero, err
	}

	if stake.IsPositive() && stake.GreaterThan(balance) {
		return decimal.Zero, fmt.Errorf("%w: stake %s, balance %s", service.ErrInsufficientBalance, stake, balance)
	}
	if err := engine.ValidateStake(stake, balance, minBet); err != nil {
		return decimal.Zero, err
	}

	balance, err = l.userRepo.Debit(ctx, userID, stake)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			return decimal.Zero, service.ErrInsufficientBalance
		}
		return decimal.Zero, err
	}

	return balance, nil
}

// Settle начисляет ставку с выигрышем и пишет раунд в историю
func (l *Ledger) Settle(ctx context.Context, userID int, res engine.RoundResult) (decimal.Decimal, model.BetLog, error) {
	balance, err := l.userRepo.Credit(ctx, userID, res.Credit())
	if err != nil {
		return decimal.Zero, model.BetLog{}, err
	}

	betLog := model.NewBetLog(userID, res, l.now())
	if err := l.betLogRepo.Create(ctx, &betLog); err != nil {
		return decimal.Zero, model.BetLog{}, err
	}

	return balance, betLog, nil
}

// Publish обновляет статистику заведения и лидерборд.
// Ошибки только логируются: деньги уже посчитаны
func (l *Ledger) Publish(ctx context.Context, betLog model.BetLog) {
	l.statsRepo.UpdateState(betLog.Game, betLog.Stake, betLog.Stake.Add(betLog.Profit))

	if err := l.leaderboardRepo.Record(ctx, betLog); err != nil {
		l.log.Warn("leaderboard record failed",
			zap.Int("user_id", betLog.UserID),
			zap.String("game", string(betLog.Game)),
			zap.Error(err))
	}

	l.log.Debug("round settled",
		zap.String("bet_id", betLog.ID.String()),
		zap.Int("user_id", betLog.UserID),
		zap.String("game", string(betLog.Game)),
		zap.String("outcome", string(betLog.Outcome)),
		zap.String("stake", betLog.Stake.String()),
		zap.String("profit", betLog.Profit.String()))
}

// Balance текущий баланс без блокировки
func (l *Ledger) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	user, err := l.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return decimal.Zero, service.ErrUnauthorized
		}
		return decimal.Zero, err
	}
	return user.Balance, nil
}
