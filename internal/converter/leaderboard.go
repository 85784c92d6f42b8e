package converter

import (
	"minigames_backend/internal/api/dto/leaderboard"
	"minigames_backend/internal/model"
)

func ToLeaderboardResponse(entries []model.LeaderboardEntry) []leaderboard.EntryResponse {
	result := make([]leaderboard.EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = leaderboard.EntryResponse{
			Place:  i + 1,
			UserID: e.UserID,
			Name:   e.Name,
			Profit: e.Profit,
			Rounds: e.Rounds,
		}
	}
	return result
}

func ToStatsResponse(stats model.HouseStats) leaderboard.StatsResponse {
	return leaderboard.StatsResponse{
		Game:        stats.Game,
		TotalRounds: stats.TotalRounds,
		TotalStaked: stats.TotalStaked,
		TotalReturn: stats.TotalReturn,
		RTP:         stats.RTP,
		WindowRTP:   stats.WindowRTP,
		WindowSize:  stats.WindowSize,
	}
}
