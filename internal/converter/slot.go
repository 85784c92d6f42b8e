package converter

import (
	"minigames_backend/internal/api/dto/slot"
	"minigames_backend/internal/model"
)

func ToSlotSpin(req slot.SpinRequest) model.SlotSpin {
	return model.SlotSpin{
		Bet: req.Bet,
	}
}

func ToSlotSpinResponse(res model.SlotSpinResult) slot.SpinResponse {
	var reels [3]string
	for i, s := range res.Reels {
		reels[i] = s.Glyph
	}
	return slot.SpinResponse{
		Reels:   reels,
		Result:  toRoundResult(res.Result),
		Balance: res.Balance,
	}
}
