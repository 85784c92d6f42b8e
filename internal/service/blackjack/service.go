package blackjack

import (
	"time"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"
	"minigames_backend/internal/service/wager"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.BlackjackRepository
	ledger    *wager.Ledger
	txManager trm.Manager
	rules     engine.Rules
	rng       engine.RandomSource

	newDeck func(engine.RandomSource) engine.Deck
	now     func() time.Time
}

// NewBlackjackService блэкджек один на один с дилером, раунд хранится между запросами
func NewBlackjackService(
	repo repository.BlackjackRepository,
	ledger *wager.Ledger,
	txManager trm.Manager,
	rules engine.Rules,
	rng engine.RandomSource,
) service.BlackjackService {
	return &serv{
		repo:      repo,
		ledger:    ledger,
		txManager: txManager,
		rules:     rules,
		rng:       rng,
		newDeck:   engine.NewDeck,
		now:       time.Now,
	}
}
