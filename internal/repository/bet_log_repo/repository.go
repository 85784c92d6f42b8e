package bet_log_repo

import (
	"context"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "bet_logs"
	colID         = "id"
	colUserID     = "user_id"
	colGame       = "game"
	colStake      = "stake"
	colMultiplier = "multiplier"
	colOutcome    = "outcome"
	colProfit     = "profit"
	colCreatedAt  = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetLogRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BetLogRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Create - запись о завершенном раунде
func (r *repo) Create(ctx context.Context, log *model.BetLog) error {
	query := repository.Psql.Insert(table).
		Columns(colID, colUserID, colGame, colStake, colMultiplier, colOutcome, colProfit, colCreatedAt).
		Values(log.ID, log.UserID, string(log.Game), log.Stake, log.Multiplier, string(log.Outcome), log.Profit, log.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// ListByUser - последние ставки пользователя, новые первыми
func (r *repo) ListByUser(ctx context.Context, userID int, limit int) ([]model.BetLog, error) {
	query := repository.Psql.Select(colID, colUserID, colGame, colStake, colMultiplier, colOutcome, colProfit, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]model.BetLog, 0, limit)
	for rows.Next() {
		var (
			l             model.BetLog
			game, outcome string
		)
		if err := rows.Scan(&l.ID, &l.UserID, &game, &l.Stake, &l.Multiplier, &outcome, &l.Profit, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Game = engine.GameType(game)
		l.Outcome = engine.Outcome(outcome)
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
