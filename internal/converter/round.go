package converter

import (
	"minigames_backend/internal/api/dto/round"
	"minigames_backend/internal/engine"
)

func toRoundResult(res engine.RoundResult) round.Result {
	return round.Result{
		Game:       string(res.Game),
		Outcome:    string(res.Outcome),
		Stake:      res.Stake,
		Multiplier: res.Multiplier,
		Payout:     res.Payout,
		Credit:     res.Credit(),
	}
}
