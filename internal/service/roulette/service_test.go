package roulette

import (
	"context"
	"testing"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository/stats_repo"
	"minigames_backend/internal/service"
	"minigames_backend/internal/service/servicetest"
	"minigames_backend/internal/service/wager"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T, balance int64, winning int) (context.Context, *servicetest.Users, *servicetest.BetLogs, *servicetest.TxManager, service.RouletteService, int) {
	t.Helper()

	users := servicetest.NewUsers()
	logs := servicetest.NewBetLogs()
	ledger := wager.NewLedger(users, logs, stats_repo.NewStatsRepository(10), servicetest.NewLeaderboard(), zap.NewNop())
	tx := servicetest.NewTxManager(users, logs)
	svc := NewRouletteService(ledger, tx, engine.DefaultRules(), servicetest.FixedRNG{Int: winning})

	userID := users.Add("player", balance)
	return middleware.WithUserID(context.Background(), userID), users, logs, tx, svc, userID
}

func spin(betType engine.BetType, stake int64, numbers ...int) model.RouletteSpin {
	return model.RouletteSpin{Bet: decimal.NewFromInt(stake), BetType: betType, Numbers: numbers}
}

func TestSpin(t *testing.T) {
	tests := []struct {
		name       string
		req        model.RouletteSpin
		winning    int
		outcome    engine.Outcome
		multiplier int64
		balance    int64
		color      string
	}{
		{name: "red on 7", req: spin(engine.BetRed, 10), winning: 7, outcome: engine.OutcomeWin, multiplier: 1, balance: 110, color: "red"},
		{name: "red on 8", req: spin(engine.BetRed, 10), winning: 8, outcome: engine.OutcomeLoss, multiplier: -1, balance: 90, color: "black"},
		{name: "single on zero pays 36", req: spin(engine.BetSingle, 10, 0), winning: 0, outcome: engine.OutcomeWin, multiplier: 36, balance: 460, color: "green"},
		{name: "single pays 35", req: spin(engine.BetSingle, 10, 17), winning: 17, outcome: engine.OutcomeWin, multiplier: 35, balance: 450, color: "black"},
		{name: "even loses on zero", req: spin(engine.BetEven, 10), winning: 0, outcome: engine.OutcomeLoss, multiplier: -1, balance: 90, color: "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, users, logs, _, svc, userID := setup(t, 100, tt.winning)

			res, err := svc.Spin(ctx, tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.winning, res.WinningNumber)
			assert.Equal(t, tt.color, res.Color)
			assert.Equal(t, tt.outcome, res.Result.Outcome)
			assert.True(t, res.Result.Multiplier.Equal(decimal.NewFromInt(tt.multiplier)))
			assert.True(t, res.Balance.Equal(decimal.NewFromInt(tt.balance)))
			assert.True(t, users.Balance(userID).Equal(decimal.NewFromInt(tt.balance)))
			assert.Len(t, logs.All(), 1)
		})
	}
}

func TestSpin_Rejected(t *testing.T) {
	t.Run("incomplete selection is rejected before debit", func(t *testing.T) {
		ctx, users, logs, tx, svc, userID := setup(t, 100, 5)

		_, err := svc.Spin(ctx, spin(engine.BetPick2, 10, 5))
		assert.ErrorIs(t, err, engine.ErrIncompleteSelection)
		assert.Zero(t, tx.Calls)
		assert.True(t, users.Balance(userID).Equal(decimal.NewFromInt(100)))
		assert.Empty(t, logs.All())
	})

	t.Run("stake over balance", func(t *testing.T) {
		ctx, users, _, _, svc, userID := setup(t, 100, 5)

		_, err := svc.Spin(ctx, spin(engine.BetRed, 101))
		assert.ErrorIs(t, err, service.ErrInsufficientBalance)
		assert.True(t, users.Balance(userID).Equal(decimal.NewFromInt(100)))
	})

	t.Run("fraction of a cent", func(t *testing.T) {
		ctx, users, logs, _, svc, userID := setup(t, 100, 7)

		req := spin(engine.BetRed, 0)
		req.Bet = decimal.RequireFromString("1.005")
		_, err := svc.Spin(ctx, req)
		assert.ErrorIs(t, err, engine.ErrInvalidBet)
		assert.True(t, users.Balance(userID).Equal(decimal.NewFromInt(100)))
		assert.Empty(t, logs.All())
	})

	t.Run("zero stake", func(t *testing.T) {
		ctx, _, _, _, svc, _ := setup(t, 100, 5)

		_, err := svc.Spin(ctx, spin(engine.BetRed, 0))
		assert.ErrorIs(t, err, engine.ErrInvalidBet)
	})
}
