package blackjack

import (
	"context"
	"errors"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/middleware"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"

	"github.com/shopspring/decimal"
)

// Deal списывает ставку и раздает по две карты.
// Пока предыдущий раунд не закончен, новая раздача запрещена
func (s *serv) Deal(ctx context.Context, req model.BlackjackDeal) (*model.BlackjackView, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	var view *model.BlackjackView
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Списание первым: строка пользователя блокируется, параллельные раздачи встают в очередь
		balance, err := s.ledger.PlaceStake(txCtx, userID, req.Bet, s.rules.BlackjackMinBet)
		if err != nil {
			return err
		}

		_, err = s.repo.GetRound(txCtx, userID)
		if err == nil {
			return engine.ErrRoundInProgress
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		player, dealer, deck, err := engine.DealInitialHands(s.newDeck(s.rng))
		if err != nil {
			return err
		}

		round := &model.BlackjackRound{
			UserID:    userID,
			Stake:     req.Bet,
			Player:    player,
			Dealer:    dealer,
			Deck:      deck,
			CreatedAt: s.now(),
		}
		if err := s.repo.SaveRound(txCtx, round); err != nil {
			return err
		}

		view = newView(round, nil, balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Hit карта игроку. Перебор сразу завершает раунд проигрышем
func (s *serv) Hit(ctx context.Context) (*model.BlackjackView, error) {
	return s.act(ctx, func(round *model.BlackjackRound) (bool, error) {
		player, deck, err := engine.Hit(round.Player, round.Deck)
		if err != nil {
			return false, err
		}
		round.Player, round.Deck = player, deck
		return engine.Score(player) > 21, nil
	})
}

// Stand игрок останавливается, дилер добирает до 17, раунд рассчитывается
func (s *serv) Stand(ctx context.Context) (*model.BlackjackView, error) {
	return s.act(ctx, func(round *model.BlackjackRound) (bool, error) {
		round.Dealer, round.Deck = engine.DealerPlay(round.Dealer, round.Deck)
		return true, nil
	})
}

// Round текущий незавершенный раунд
func (s *serv) Round(ctx context.Context) (*model.BlackjackView, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	round, err := s.repo.GetRound(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, engine.ErrNoActiveRound
		}
		return nil, err
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return newView(round, nil, balance), nil
}

// act общий шаг раунда: загрузить, изменить, сохранить или рассчитать
func (s *serv) act(ctx context.Context, step func(round *model.BlackjackRound) (finished bool, err error)) (*model.BlackjackView, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	var (
		view    *model.BlackjackView
		settled *model.BetLog
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		round, err := s.repo.GetRound(txCtx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return engine.ErrNoActiveRound
			}
			return err
		}

		finished, err := step(round)
		if err != nil {
			return err
		}

		if !finished {
			if err := s.repo.SaveRound(txCtx, round); err != nil {
				return err
			}
			balance, err := s.ledger.Balance(txCtx, userID)
			if err != nil {
				return err
			}
			view = newView(round, nil, balance)
			return nil
		}

		res, err := engine.ResolveBlackjackRound(s.rules, round.Stake, round.Player, round.Dealer)
		if err != nil {
			return err
		}
		balance, betLog, err := s.ledger.Settle(txCtx, userID, res)
		if err != nil {
			return err
		}
		if err := s.repo.DeleteRound(txCtx, userID); err != nil {
			return err
		}

		settled = &betLog
		view = newView(round, &res, balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled != nil {
		s.ledger.Publish(ctx, *settled)
	}
	return view, nil
}

// newView то, что отдается игроку. До расчета первая карта дилера скрыта
func newView(round *model.BlackjackRound, res *engine.RoundResult, balance decimal.Decimal) *model.BlackjackView {
	view := &model.BlackjackView{
		Stake:       round.Stake,
		Player:      round.Player,
		PlayerScore: engine.Score(round.Player),
		Dealer:      round.Dealer,
		DealerScore: engine.Score(round.Dealer),
		Finished:    res != nil,
		Result:      res,
		Balance:     balance,
	}
	if res == nil && len(round.Dealer) > 0 {
		visible := round.Dealer[1:]
		view.Dealer = visible
		view.DealerScore = engine.Score(visible)
		view.DealerHidden = true
	}
	return view
}
