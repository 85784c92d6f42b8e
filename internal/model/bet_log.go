package model

import (
	"time"

	"minigames_backend/internal/engine"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetLog запись о завершенном раунде (для истории и лидерборда)
type BetLog struct {
	ID         uuid.UUID
	UserID     int
	Game       engine.GameType
	Stake      decimal.Decimal
	Multiplier decimal.Decimal
	Outcome    engine.Outcome
	Profit     decimal.Decimal
	CreatedAt  time.Time
}

// NewBetLog запись по результату раунда
func NewBetLog(userID int, res engine.RoundResult, now time.Time) BetLog {
	return BetLog{
		ID:         uuid.New(),
		UserID:     userID,
		Game:       res.Game,
		Stake:      res.Stake,
		Multiplier: res.Multiplier,
		Outcome:    res.Outcome,
		Profit:     res.Payout,
		CreatedAt:  now,
	}
}

type LeaderboardEntry struct {
	UserID int
	Name   string
	Profit decimal.Decimal
	Rounds int
}
