package converter

import (
	"minigames_backend/internal/api/dto/blackjack"
	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
)

func ToBlackjackDeal(req blackjack.DealRequest) model.BlackjackDeal {
	return model.BlackjackDeal{
		Bet: req.Bet,
	}
}

func ToBlackjackResponse(view model.BlackjackView) blackjack.RoundResponse {
	resp := blackjack.RoundResponse{
		Stake:        view.Stake,
		Player:       toCards(view.Player),
		PlayerScore:  view.PlayerScore,
		Dealer:       toCards(view.Dealer),
		DealerScore:  view.DealerScore,
		DealerHidden: view.DealerHidden,
		Finished:     view.Finished,
		Balance:      view.Balance,
	}
	if view.Result != nil {
		res := toRoundResult(*view.Result)
		resp.Result = &res
	}
	return resp
}

func toCards(hand engine.Hand) []blackjack.Card {
	result := make([]blackjack.Card, len(hand))
	for i, c := range hand {
		result[i] = blackjack.Card{
			Suit:  c.Suit,
			Rank:  c.Rank,
			Score: c.Score,
		}
	}
	return result
}
