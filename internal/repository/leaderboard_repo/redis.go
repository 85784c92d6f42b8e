package leaderboard_repo

import (
	"context"
	"strconv"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	keyPrefix = "leaderboard:"
	allGames  = "all"
)

type redisRepo struct {
	rdb redis.UniversalClient
}

// NewRedisLeaderboard лидерборд на sorted set: score - суммарная прибыль, member - id игрока
func NewRedisLeaderboard(rdb redis.UniversalClient) repository.LeaderboardRepository {
	return &redisRepo{rdb: rdb}
}

func profitKey(game string) string { return keyPrefix + game }

func roundsKey(game string) string { return keyPrefix + game + ":rounds" }

// Record - добавляет прибыль раунда в общий рейтинг и в рейтинг игры
func (r *redisRepo) Record(ctx context.Context, log model.BetLog) error {
	member := strconv.Itoa(log.UserID)
	profit := log.Profit.InexactFloat64()

	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, game := range []string{allGames, string(log.Game)} {
			pipe.ZIncrBy(ctx, profitKey(game), profit, member)
			pipe.HIncrBy(ctx, roundsKey(game), member, 1)
		}
		return nil
	})
	return err
}

// Top - первые limit игроков. Имена не хранятся, их заполняет сервис
func (r *redisRepo) Top(ctx context.Context, game engine.GameType, limit int) ([]model.LeaderboardEntry, error) {
	key := allGames
	if game != "" {
		key = string(game)
	}

	scores, err := r.rdb.ZRevRangeWithScores(ctx, profitKey(key), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	members := make([]string, len(scores))
	for i, z := range scores {
		members[i], _ = z.Member.(string)
	}
	rounds, err := r.rdb.HMGet(ctx, roundsKey(key), members...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		id, err := strconv.Atoi(members[i])
		if err != nil {
			continue
		}
		e := model.LeaderboardEntry{
			UserID: id,
			Profit: decimal.NewFromFloat(z.Score).Round(2),
		}
		if s, ok := rounds[i].(string); ok {
			e.Rounds, _ = strconv.Atoi(s)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
