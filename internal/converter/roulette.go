package converter

import (
	"minigames_backend/internal/api/dto/roulette"
	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
)

func ToRouletteSpin(req roulette.SpinRequest) model.RouletteSpin {
	return model.RouletteSpin{
		Bet:     req.Bet,
		BetType: engine.BetType(req.BetType),
		Numbers: req.Numbers,
	}
}

func ToRouletteSpinResponse(res model.RouletteSpinResult) roulette.SpinResponse {
	return roulette.SpinResponse{
		WinningNumber: res.WinningNumber,
		Color:         res.Color,
		Result:        toRoundResult(res.Result),
		Balance:       res.Balance,
	}
}
