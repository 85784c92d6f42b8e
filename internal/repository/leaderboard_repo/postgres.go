package leaderboard_repo

import (
	"context"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgRepo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

// NewPostgresLeaderboard лидерборд, который считается агрегатом по bet_logs
func NewPostgresLeaderboard(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.LeaderboardRepository {
	return &pgRepo{
		dbc:    dbc,
		getter: getter,
	}
}

// Record - ничего не делает: источник данных - сама таблица bet_logs
func (r *pgRepo) Record(context.Context, model.BetLog) error {
	return nil
}

// Top - игроки с наибольшей суммарной прибылью
func (r *pgRepo) Top(ctx context.Context, game engine.GameType, limit int) ([]model.LeaderboardEntry, error) {
	query := repository.Psql.Select("b.user_id", "u.name", "SUM(b.profit) AS total_profit", "COUNT(*) AS rounds").
		From("bet_logs b").
		Join("users u ON u.id = b.user_id").
		GroupBy("b.user_id", "u.name").
		OrderBy("total_profit DESC", "b.user_id").
		Limit(uint64(limit))
	if game != "" {
		query = query.Where(sq.Eq{"b.game": string(game)})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Name, &e.Profit, &e.Rounds); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
