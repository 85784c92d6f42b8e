package roulette

import (
	"minigames_backend/internal/api/dto/round"

	"github.com/shopspring/decimal"
)

type SpinRequest struct {
	Bet     decimal.Decimal `json:"bet"`
	BetType string          `json:"bet_type"` // single, red, pick2...
	Numbers []int           `json:"numbers"`  // для red/black/... пустой
}

type SpinResponse struct {
	WinningNumber int             `json:"winning_number"`
	Color         string          `json:"color"`
	Result        round.Result    `json:"result"`
	Balance       decimal.Decimal `json:"balance"`
}
