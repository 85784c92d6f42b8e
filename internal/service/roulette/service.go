package roulette

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

// NewRouletteService европейская рулетка 0..36
func NewRouletteService(
	ledger *wager.Ledger,
	txManager trm.Manager,
	rules engine.Rules,
	rng engine.RandomSource,
) service.RouletteService {
	return &serv{
		ledger:    ledger,
		txManager: txManager,
		rules:     rules,
		rng:       rng,
	}
}

// Spin ставка, вращение и расчет в одной транзакции
func (s *serv) Spin(ctx context.Context, req model.RouletteSpin) (*model.RouletteSpinResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	// Ставку проверяем до списания и до вращения
	bet := engine.RouletteBet{Type: req.BetType, Numbers: req.Numbers}
	if err := bet.Validate(); err != nil {
		return nil, err
	}

	var res *model.RouletteSpinResult
	var betLog model.BetLog
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.ledger.PlaceStake(txCtx, userID, req.Bet, s.rules.RouletteMinBet); err != nil {
			return err
		}

		winning := engine.SpinWheel(s.rng)
		result, err := engine.ResolveRoulette(req.Bet, bet, winning)
		if err != nil {
			return err
		}

		balance, l, err := s.ledger.Settle(txCtx, userID, result)
		if err != nil {
			return err
		}
		betLog = l

		res = &model.RouletteSpinResult{
			WinningNumber: winning,
			Color:         color(winning),
			Result:        result,
			Balance:       balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.ledger.Publish(ctx, betLog)
	return res, nil
}

func color(n int) string {
	switch {
	case engine.IsRed(n):
		return "red"
	case engine.IsBlack(n):
		return "black"
	default:
		return "green"
	}
}
