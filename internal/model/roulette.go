package model

import (
	"minigames_backend/internal/engine"

	"github.com/shopspring/decimal"
)

type RouletteSpin struct {
	Bet     decimal.Decimal
	BetType engine.BetType
	Numbers []int
}

type RouletteSpinResult struct {
	WinningNumber int
	Color         string
	Result        engine.RoundResult
	Balance       decimal.Decimal
}
