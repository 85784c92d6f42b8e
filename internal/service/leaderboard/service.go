package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"

	"go.uber.org/zap"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type serv struct {
	repo      repository.LeaderboardRepository
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	log       *zap.Logger
}

func NewLeaderboardService(
	repo repository.LeaderboardRepository,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.LeaderboardService {
	return &serv{
		repo:      repo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		log:       log,
	}
}

// Top лучшие игроки по суммарной прибыли. Пустая game - по всем играм
func (s *serv) Top(ctx context.Context, game string, limit int) ([]model.LeaderboardEntry, error) {
	g := engine.GameType(game)
	if game != "" && !g.Valid() {
		return nil, fmt.Errorf("%w: %q", service.ErrUnknownGame, game)
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	entries, err := s.repo.Top(ctx, g, limit)
	if err != nil {
		return nil, err
	}

	// redis хранит только ID, имена добираем из БД
	for i := range entries {
		if entries[i].Name != "" {
			continue
		}
		user, err := s.userRepo.GetUserByID(ctx, entries[i].UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.log.Warn("leaderboard user not found", zap.Int("user_id", entries[i].UserID))
				continue
			}
			return nil, err
		}
		entries[i].Name = user.Name
	}

	return entries, nil
}

// HouseStats RTP заведения по игре
func (s *serv) HouseStats(_ context.Context, game string) (*model.HouseStats, error) {
	g := engine.GameType(game)
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %q", service.ErrUnknownGame, game)
	}

	stats := s.statsRepo.Snapshot(g)
	return &stats, nil
}
