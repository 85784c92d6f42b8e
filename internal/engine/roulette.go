package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	rouletteMaxNumber = 36
	zeroStraightPays  = 36
)

type BetType string

const (
	BetSingle BetType = "single"
	BetHigh   BetType = "high"
	BetLow    BetType = "low"
	BetRed    BetType = "red"
	BetBlack  BetType = "black"
	BetOdd    BetType = "odd"
	BetEven   BetType = "even"
	BetZone   BetType = "zone"
	BetRow    BetType = "row"
	BetPick2  BetType = "pick2"
	BetPick3  BetType = "pick3"
	BetPick4  BetType = "pick4"
	BetPick6  BetType = "pick6"
)

type betRule struct {
	pays  int64
	arity int
}

// Таблица выплат "N к 1" и сколько чисел нужно выбрать
var betRules = map[BetType]betRule{
	BetSingle: {pays: 35, arity: 1},
	BetHigh:   {pays: 1},
	BetLow:    {pays: 1},
	BetRed:    {pays: 1},
	BetBlack:  {pays: 1},
	BetOdd:    {pays: 1},
	BetEven:   {pays: 1},
	BetZone:   {pays: 1, arity: 1},
	BetRow:    {pays: 1, arity: 1},
	BetPick2:  {pays: 17, arity: 2},
	BetPick3:  {pays: 11, arity: 3},
	BetPick4:  {pays: 8, arity: 4},
	BetPick6:  {pays: 5, arity: 6},
}

var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// BetTypes все типы ставок в порядке отображения
func BetTypes() []BetType {
	return []BetType{
		BetSingle, BetHigh, BetLow, BetRed, BetBlack, BetOdd, BetEven,
		BetZone, BetRow, BetPick2, BetPick3, BetPick4, BetPick6,
	}
}

// Arity сколько чисел нужно выбрать для типа ставки
func (b BetType) Arity() int {
	return betRules[b].arity
}

// Pays табличный коэффициент
func (b BetType) Pays() int64 {
	return betRules[b].pays
}

func (b BetType) known() bool {
	_, ok := betRules[b]
	return ok
}

// IsRed красное число. 0 не красное и не черное
func IsRed(n int) bool {
	_, ok := redNumbers[n]
	return ok
}

// IsBlack черное число
func IsBlack(n int) bool {
	return n >= 1 && n <= rouletteMaxNumber && !IsRed(n)
}

// Zone номер дюжины 1..3, 0 для зеро
func Zone(n int) int {
	if n < 1 || n > rouletteMaxNumber {
		return 0
	}
	return (n-1)/12 + 1
}

// Row номер ряда 1..3 (1,4,7..; 2,5,8..; 3,6,9..), 0 для зеро
func Row(n int) int {
	if n < 1 || n > rouletteMaxNumber {
		return 0
	}
	return (n-1)%3 + 1
}

// RouletteBet ставка: тип и выбранные числа (для зоны и ряда - номер 1..3)
type RouletteBet struct {
	Type    BetType
	Numbers []int
}

// Validate проверка до вращения колеса
func (b RouletteBet) Validate() error {
	if b.Type == "" {
		return fmt.Errorf("%w: bet type is not selected", ErrIncompleteSelection)
	}
	if !b.Type.known() {
		return fmt.Errorf("%w: unknown bet type %q", ErrInvalidBet, b.Type)
	}
	if len(b.Numbers) != b.Type.Arity() {
		return fmt.Errorf("%w: %s needs %d numbers, got %d",
			ErrIncompleteSelection, b.Type, b.Type.Arity(), len(b.Numbers))
	}

	seen := make(map[int]struct{}, len(b.Numbers))
	for _, n := range b.Numbers {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: number %d selected twice", ErrInvalidBet, n)
		}
		seen[n] = struct{}{}

		switch b.Type {
		case BetZone, BetRow:
			if n < 1 || n > 3 {
				return fmt.Errorf("%w: %s must be 1..3, got %d", ErrInvalidBet, b.Type, n)
			}
		default:
			if n < 0 || n > rouletteMaxNumber {
				return fmt.Errorf("%w: number must be 0..%d, got %d", ErrInvalidBet, rouletteMaxNumber, n)
			}
		}
	}
	return nil
}

// Covers выигрывает ли ставка при выпавшем числе
func (b RouletteBet) Covers(winning int) bool {
	switch b.Type {
	case BetHigh:
		return winning >= 19 && winning <= rouletteMaxNumber
	case BetLow:
		return winning >= 1 && winning <= 18
	case BetRed:
		return IsRed(winning)
	case BetBlack:
		return IsBlack(winning)
	case BetOdd:
		return winning != 0 && winning%2 != 0
	case BetEven:
		return winning != 0 && winning%2 == 0
	case BetZone:
		return len(b.Numbers) == 1 && Zone(winning) == b.Numbers[0]
	case BetRow:
		return len(b.Numbers) == 1 && Row(winning) == b.Numbers[0]
	case BetSingle, BetPick2, BetPick3, BetPick4, BetPick6:
		for _, n := range b.Numbers {
			if n == winning {
				return true
			}
		}
	}
	return false
}

// SpinWheel выпавшее число 0..36
func SpinWheel(rng RandomSource) int {
	return rng.IntN(rouletteMaxNumber + 1)
}

// RoulettePlay ставка и выпавшее число
type RoulettePlay struct {
	Bet     RouletteBet
	Winning int
}

func (RoulettePlay) Game() GameType { return GameRoulette }

func (p RoulettePlay) settle(Rules) (Outcome, decimal.Decimal, error) {
	if err := p.Bet.Validate(); err != nil {
		return "", decimal.Zero, err
	}
	if p.Winning < 0 || p.Winning > rouletteMaxNumber {
		return "", decimal.Zero, fmt.Errorf("winning number %d out of range", p.Winning)
	}
	if !p.Bet.Covers(p.Winning) {
		return OutcomeLoss, multiplierLoss, nil
	}

	pays := p.Bet.Type.Pays()
	// Правило заведения: ставка на одно число при выпавшем зеро платит 36, а не 35
	if p.Bet.Type == BetSingle && p.Winning == 0 {
		pays = zeroStraightPays
	}
	return OutcomeWin, decimal.NewFromInt(pays), nil
}

// ResolveRoulette результат ставки при выпавшем числе
func ResolveRoulette(stake decimal.Decimal, bet RouletteBet, winning int) (RoundResult, error) {
	return Resolve(Rules{}, stake, RoulettePlay{Bet: bet, Winning: winning})
}
