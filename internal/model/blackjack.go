package model

import (
	"time"

	"minigames_backend/internal/engine"

	"github.com/shopspring/decimal"
)

type BlackjackDeal struct {
	Bet decimal.Decimal
}

// BlackjackRound незавершенный раунд, хранится на сервере между запросами
type BlackjackRound struct {
	UserID    int
	Stake     decimal.Decimal
	Player    engine.Hand
	Dealer    engine.Hand
	Deck      engine.Deck
	CreatedAt time.Time
}

// BlackjackView то, что видит игрок. Пока раунд идет, первая карта дилера скрыта
type BlackjackView struct {
	Stake        decimal.Decimal
	Player       engine.Hand
	PlayerScore  int
	Dealer       engine.Hand
	DealerScore  int
	DealerHidden bool
	Finished     bool
	Result       *engine.RoundResult
	Balance      decimal.Decimal
}
