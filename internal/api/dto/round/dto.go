package round

import "github.com/shopspring/decimal"

// Result итог раунда. Multiplier "N к 1", у слота валовый. Payout - прибыль игрока, Credit - возврат на баланс
type Result struct {
	Game       string          `json:"game"`
	Outcome    string          `json:"outcome"` // win, loss, tie
	Stake      decimal.Decimal `json:"stake"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Payout     decimal.Decimal `json:"payout"`
	Credit     decimal.Decimal `json:"credit"`
}
