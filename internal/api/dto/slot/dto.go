package slot

import (
	"minigames_backend/internal/api/dto/round"

	"github.com/shopspring/decimal"
)

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"`
}

type SpinResponse struct {
	Reels   [3]string       `json:"reels"`
	Result  round.Result    `json:"result"`
	Balance decimal.Decimal `json:"balance"`
}
