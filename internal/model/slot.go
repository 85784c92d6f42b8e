package model

import (
	"minigames_backend/internal/engine"

	"github.com/shopspring/decimal"
)

type SlotSpin struct {
	Bet decimal.Decimal
}

type SlotSpinResult struct {
	Reels   engine.Reels
	Result  engine.RoundResult
	Balance decimal.Decimal
}
