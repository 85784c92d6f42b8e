package blackjack

import (
	"minigames_backend/internal/api/dto/round"

	"github.com/shopspring/decimal"
)

type DealRequest struct {
	Bet decimal.Decimal `json:"bet"`
}

type Card struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Score int    `json:"score"`
}

type RoundResponse struct {
	Stake        decimal.Decimal `json:"stake"`
	Player       []Card          `json:"player"`
	PlayerScore  int             `json:"player_score"`
	Dealer       []Card          `json:"dealer"`       // без первой карты, пока dealer_hidden
	DealerScore  int             `json:"dealer_score"` // по видимым картам
	DealerHidden bool            `json:"dealer_hidden"`
	Finished     bool            `json:"finished"`
	Result       *round.Result   `json:"result,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
}
