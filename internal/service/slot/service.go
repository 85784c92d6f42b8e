package slot

import (
	"context"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/model"
	"minigames_backend/internal/service"
	"minigames_backend/internal/service/wager"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	ledger    *wager.Ledger
	txManager trm.Manager
	rules     engine.Rules
	rng       engine.RandomSource
}

// NewSlotService слот 3 барабана, одна линия
func NewSlotService(
	ledger *wager.Ledger,
	txManager trm.Manager,
	rules engine.Rules,
	rng engine.RandomSource,
) service.SlotService {
	return &serv{
		ledger:    ledger,
		txManager: txManager,
		rules:     rules,
		rng:       rng,
	}
}

// Spin выполняет спин: списание, барабаны, начисление
func (s *serv) Spin(ctx context.Context, req model.SlotSpin) (*model.SlotSpinResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	var res *model.SlotSpinResult
	var betLog model.BetLog
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledger.PlaceStake(txCtx, userID, req.Bet, s.rules.SlotMinBet); err != nil {
			return err
		}

		reels := engine.SpinReels(s.rng, s.rules.SlotSymbols)
		result, err := engine.ResolveSlot(req.Bet, reels)
		if err != nil {
			return err
		}

		balance, l, err := s.ledger.Settle(txCtx, userID, result)
		if err != nil {
			return err
		}
		betLog = l

		res = &model.SlotSpinResult{
			Reels:   reels,
			Result:  result,
			Balance: balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.ledger.Publish(ctx, betLog)
	return res, nil
}
