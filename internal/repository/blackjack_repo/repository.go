package blackjack_repo

import (
	"context"
	"encoding/json"
	"errors"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "blackjack_rounds"
	colUserID    = "user_id"
	colStake     = "stake"
	colPlayer    = "player_hand"
	colDealer    = "dealer_hand"
	colDeck      = "deck"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBlackjackRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BlackjackRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetRound - незавершенный раунд игрока.
// Возвращает repository.ErrNotFound, если раунда нет
func (r *repo) GetRound(ctx context.Context, userID int) (*model.BlackjackRound, error) {
	query := repository.Psql.Select(colStake, colPlayer, colDealer, colDeck, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		Suffix("FOR UPDATE")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	round := model.BlackjackRound{UserID: userID}
	var playerJSON, dealerJSON, deckJSON []byte
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&round.Stake, &playerJSON, &dealerJSON, &deckJSON, &round.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(playerJSON, &round.Player); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(dealerJSON, &round.Dealer); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(deckJSON, &round.Deck); err != nil {
		return nil, err
	}

	return &round, nil
}

// SaveRound - сохраняет раунд. Если запись есть - перезаписывает руки и колоду
func (r *repo) SaveRound(ctx context.Context, round *model.BlackjackRound) error {
	playerJSON, err := json.Marshal(round.Player)
	if err != nil {
		return err
	}
	dealerJSON, err := json.Marshal(round.Dealer)
	if err != nil {
		return err
	}
	deckJSON, err := json.Marshal(round.Deck)
	if err != nil {
		return err
	}

	query := repository.Psql.Insert(table).
		Columns(colUserID, colStake, colPlayer, colDealer, colDeck, colCreatedAt).
		Values(round.UserID, round.Stake, playerJSON, dealerJSON, deckJSON, round.CreatedAt).
		Suffix("ON CONFLICT (" + colUserID + ") DO UPDATE SET " +
			colPlayer + " = EXCLUDED." + colPlayer + ", " +
			colDealer + " = EXCLUDED." + colDealer + ", " +
			colDeck + " = EXCLUDED." + colDeck)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// DeleteRound - удаляет раунд после расчета
func (r *repo) DeleteRound(ctx context.Context, userID int) error {
	query := repository.Psql.Delete(table).
		Where(sq.Eq{colUserID: userID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
