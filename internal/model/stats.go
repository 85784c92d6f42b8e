package model

import "github.com/shopspring/decimal"

// HouseStats статистика заведения по одной игре
type HouseStats struct {
	Game        string
	TotalRounds int
	TotalStaked decimal.Decimal
	TotalReturn decimal.Decimal
	RTP         float64 // TotalReturn/TotalStaked*100
	WindowRTP   float64 // RTP по окну последних раундов
	WindowSize  int
}
