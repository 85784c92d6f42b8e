package slot

import (
	"context"
	"errors"
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

func TestSpin_ThreeCherries(t *testing.T) {
	users := servicetest.NewUsers()
	logs := servicetest.NewBetLogs()
	board := servicetest.NewLeaderboard()
	stats := stats_repo.NewStatsRepository(10)
	ledger := wager.NewLedger(users, logs, stats, board, zap.NewNop())
	// Float64 = 0 всегда попадает в первый символ таблицы
	svc := NewSlotService(ledger, servicetest.NewTxManager(users, logs), engine.DefaultRules(), servicetest.FixedRNG{Float: 0})

	userID := users.Add("player", 1000)
	ctx := middleware.WithUserID(context.Background(), userID)

	res, err := svc.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(100)})
	require.NoError(t, err)

	for _, s := range res.Reels {
		assert.Equal(t, "🍒", s.Glyph)
	}
	assert.Equal(t, engine.OutcomeWin, res.Result.Outcome)
	assert.True(t, res.Result.Multiplier.Equal(decimal.NewFromInt(5)))
	assert.True(t, res.Result.Credit().Equal(decimal.NewFromInt(500)))
	// 1000 - 100 + 500
	assert.True(t, res.Balance.Equal(decimal.NewFromInt(1400)))
	assert.True(t, users.Balance(userID).Equal(decimal.NewFromInt(1400)))
	assert.Len(t, logs.All(), 1)
	assert.Len(t, board.Records(), 1)
	assert.Equal(t, 1, stats.Snapshot(engine.GameSlot).TotalRounds)
}

func TestSpin_SeededRNGKeepsLedgerConsistent(t *testing.T) {
	users := servicetest.NewUsers()
	logs := servicetest.NewBetLogs()
	ledger := wager.NewLedger(users, logs, stats_repo.NewStatsRepository(0), servicetest.NewLeaderboard(), zap.NewNop())
	svc := NewSlotService(ledger, servicetest.NewTxManager(users, logs), engine.DefaultRules(), engine.NewSeededRNG(7))

	userID := users.Add("player", 100_000)
	ctx := middleware.WithUserID(context.Background(), userID)

	total := decimal.Zero
	for i := 0; i < 200; i++ {
		res, err := svc.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(100)})
		if errors.Is(err, service.ErrInsufficientBalance) {
			break
		}
		require.NoError(t, err)
		total = total.Add(res.Result.Payout)
	}

	want := decimal.NewFromInt(100_000).Add(total)
	assert.True(t, users.Balance(userID).Equal(want), "balance %s, want %s", users.Balance(userID), want)
}

func TestSpin_LeaderboardFailureDoesNotFailSpin(t *testing.T) {
	users := servicetest.NewUsers()
	logs := servicetest.NewBetLogs()
	board := servicetest.NewLeaderboard()
	board.Err = errors.New("redis down")
	ledger := wager.NewLedger(users, logs, stats_repo.NewStatsRepository(0), board, zap.NewNop())
	svc := NewSlotService(ledger, servicetest.NewTxManager(users, logs), engine.DefaultRules(), servicetest.FixedRNG{Float: 0.99})

	userID := users.Add("player", 1000)
	ctx := middleware.WithUserID(context.Background(), userID)

	_, err := svc.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.Len(t, logs.All(), 1)
}

func TestSpin_InsufficientBalance(t *testing.T) {
	users := servicetest.NewUsers()
	logs := servicetest.NewBetLogs()
	ledger := wager.NewLedger(users, logs, stats_repo.NewStatsRepository(0), servicetest.NewLeaderboard(), zap.NewNop())
	svc := NewSlotService(ledger, servicetest.NewTxManager(users, logs), engine.DefaultRules(), servicetest.FixedRNG{})

	userID := users.Add("player", 99)
	ctx := middleware.WithUserID(context.Background(), userID)

	_, err := svc.Spin(ctx, model.SlotSpin{Bet: decimal.NewFromInt(100)})
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)
	assert.True(t, users.Balance(userID).Equal(decimal.NewFromInt(99)))
	assert.Empty(t, logs.All())
}
