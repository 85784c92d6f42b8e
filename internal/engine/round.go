package engine

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidBet ставка ниже минимума, больше баланса, нулевая или отрицательная
	ErrInvalidBet = errors.New("invalid bet")
	// ErrIncompleteSelection выбран тип ставки без нужного количества чисел
	ErrIncompleteSelection = errors.New("incomplete selection")
	// ErrDeckExhausted в колоде не осталось карт
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrNoActiveRound действие без начатого раунда
	ErrNoActiveRound = errors.New("no active round")
	// ErrRoundInProgress новая раздача при незавершенном раунде
	ErrRoundInProgress = errors.New("round already in progress")
)

type GameType string

const (
	GameBlackjack GameType = "blackjack"
	GameRoulette  GameType = "roulette"
	GameSlot      GameType = "slot"
)

// Valid проверяет, что игра известна движку
func (g GameType) Valid() bool {
	switch g {
	case GameBlackjack, GameRoulette, GameSlot:
		return true
	}
	return false
}

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

// Множители "N к 1": проигрыш -1, ничья 0
var (
	multiplierLoss = decimal.NewFromInt(-1)
	multiplierTie  = decimal.Zero
)

// Деньги хранятся с точностью до копейки
const moneyPlaces = 2

// RoundResult итог одного раунда.
// Multiplier чистый ("N к 1"), у слота - валовый (Gross): сколько ставок вернется на баланс.
// Payout - прибыль игрока, на проигрыше отрицательная. Дробь мельче копейки отбрасывается в пользу заведения
type RoundResult struct {
	Game       GameType
	Outcome    Outcome
	Stake      decimal.Decimal
	Multiplier decimal.Decimal
	Gross      bool
	Payout     decimal.Decimal
}

func newRoundResult(game GameType, outcome Outcome, stake, multiplier decimal.Decimal, gross bool) RoundResult {
	credit := stake.Mul(multiplier)
	if !gross {
		credit = stake.Add(credit)
	}
	credit = credit.RoundFloor(moneyPlaces)

	return RoundResult{
		Game:       game,
		Outcome:    outcome,
		Stake:      stake,
		Multiplier: multiplier,
		Gross:      gross,
		Payout:     credit.Sub(stake),
	}
}

// Credit сумма, которую надо вернуть на баланс после списания ставки
func (r RoundResult) Credit() decimal.Decimal {
	return r.Stake.Add(r.Payout)
}

// Play - вариант раунда конкретной игры для общего Resolve
type Play interface {
	Game() GameType
	settle(rules Rules) (Outcome, decimal.Decimal, error)
}

// grossPlay игра, чей множитель считается от всей ставки, а не "N к 1"
type grossPlay interface {
	grossMultiplier()
}

// Resolve общая точка расчета результата для всех игр
func Resolve(rules Rules, stake decimal.Decimal, play Play) (RoundResult, error) {
	if play == nil {
		return RoundResult{}, fmt.Errorf("%w: no play", ErrIncompleteSelection)
	}
	if !stake.IsPositive() {
		return RoundResult{}, fmt.Errorf("%w: stake must be positive", ErrInvalidBet)
	}
	if !stake.Equal(stake.Round(moneyPlaces)) {
		return RoundResult{}, fmt.Errorf("%w: stake %s is not a whole number of cents", ErrInvalidBet, stake)
	}

	outcome, multiplier, err := play.settle(rules)
	if err != nil {
		return RoundResult{}, err
	}

	_, gross := play.(grossPlay)
	return newRoundResult(play.Game(), outcome, stake, multiplier, gross), nil
}

// ValidateStake проверяет ставку до раздачи/спина.
// Минимум ослабляется до "ставка <= баланс", если на балансе меньше минимума
func ValidateStake(stake, balance, minBet decimal.Decimal) error {
	if !stake.IsPositive() {
		return fmt.Errorf("%w: stake must be positive", ErrInvalidBet)
	}
	if !stake.Equal(stake.Round(moneyPlaces)) {
		return fmt.Errorf("%w: stake %s is not a whole number of cents", ErrInvalidBet, stake)
	}
	if stake.GreaterThan(balance) {
		return fmt.Errorf("%w: stake %s exceeds balance %s", ErrInvalidBet, stake, balance)
	}
	if stake.LessThan(minBet) && balance.GreaterThanOrEqual(minBet) {
		return fmt.Errorf("%w: minimum bet is %s", ErrInvalidBet, minBet)
	}
	return nil
}
