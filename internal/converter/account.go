package converter

import (
	"minigames_backend/internal/api/dto/account"
	"minigames_backend/internal/model"
)

func ToProfileResponse(user model.User) account.ProfileResponse {
	return account.ProfileResponse{
		ID:      user.ID,
		Name:    user.Name,
		Login:   user.Login,
		Balance: user.Balance,
	}
}

func ToBetResponses(logs []model.BetLog) []account.BetResponse {
	result := make([]account.BetResponse, len(logs))
	for i, l := range logs {
		result[i] = account.BetResponse{
			ID:         l.ID.String(),
			Game:       string(l.Game),
			Stake:      l.Stake,
			Multiplier: l.Multiplier,
			Outcome:    string(l.Outcome),
			Profit:     l.Profit,
			CreatedAt:  l.CreatedAt,
		}
	}
	return result
}
