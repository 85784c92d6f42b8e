package leaderboard

import "github.com/shopspring/decimal"

type EntryResponse struct {
	Place  int             `json:"place"`
	UserID int             `json:"user_id"`
	Name   string          `json:"name"`
	Profit decimal.Decimal `json:"profit"`
	Rounds int             `json:"rounds"`
}

type StatsResponse struct {
	Game        string          `json:"game"`
	TotalRounds int             `json:"total_rounds"`
	TotalStaked decimal.Decimal `json:"total_staked"`
	TotalReturn decimal.Decimal `json:"total_return"`
	RTP         float64         `json:"rtp"`
	WindowRTP   float64         `json:"window_rtp"`
	WindowSize  int             `json:"window_size"`
}
