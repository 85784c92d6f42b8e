package account

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProfileResponse struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Login   string          `json:"login"`
	Balance decimal.Decimal `json:"balance"`
}

type BetResponse struct {
	ID         string          `json:"id"`
	Game       string          `json:"game"`
	Stake      decimal.Decimal `json:"stake"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Outcome    string          `json:"outcome"`
	Profit     decimal.Decimal `json:"profit"`
	CreatedAt  time.Time       `json:"created_at"`
}
