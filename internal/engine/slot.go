package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const reelCount = 3

// SlotSymbol символ слота: вес при выпадении и валовый множитель за три в ряд
type SlotSymbol struct {
	Glyph      string  `json:"glyph" yaml:"glyph"`
	Weight     float64 `json:"weight" yaml:"weight"`
	Multiplier int64   `json:"multiplier" yaml:"multiplier"`
}

// Reels результат вращения трех барабанов
type Reels [reelCount]SlotSymbol

// DefaultSlotSymbols фрукты частые, восьмерка - редкий джекпот
func DefaultSlotSymbols() []SlotSymbol {
	return []SlotSymbol{
		{Glyph: "🍒", Weight: 5, Multiplier: 5},
		{Glyph: "🍋", Weight: 4, Multiplier: 10},
		{Glyph: "🍉", Weight: 3, Multiplier: 15},
		{Glyph: "🍇", Weight: 2, Multiplier: 20},
		{Glyph: "🍓", Weight: 2, Multiplier: 25},
		{Glyph: "🍊", Weight: 1, Multiplier: 30},
		{Glyph: "🍎", Weight: 1, Multiplier: 35},
		{Glyph: "8️⃣", Weight: 0.5, Multiplier: 100},
	}
}

// DrawSymbol выбирает символ с учетом весов: вычитаем веса по порядку, пока остаток > 0
func DrawSymbol(rng RandomSource, symbols []SlotSymbol) SlotSymbol {
	if len(symbols) == 0 {
		return SlotSymbol{}
	}
	total := 0.0
	for _, s := range symbols {
		total += s.Weight
	}

	remainder := rng.Float64() * total
	for _, s := range symbols {
		remainder -= s.Weight
		if remainder <= 0 {
			return s
		}
	}
	// Погрешность float: остаток не дошел до нуля на последнем символе
	return symbols[len(symbols)-1]
}

// SpinReels три независимых выбора, повторы допустимы
func SpinReels(rng RandomSource, symbols []SlotSymbol) Reels {
	var reels Reels
	for i := range reels {
		reels[i] = DrawSymbol(rng, symbols)
	}
	return reels
}

// SlotPlay выпавшие барабаны
type SlotPlay struct {
	Reels Reels
}

func (SlotPlay) Game() GameType { return GameSlot }

func (SlotPlay) grossMultiplier() {}

func (p SlotPlay) settle(Rules) (Outcome, decimal.Decimal, error) {
	first := p.Reels[0]
	if first.Glyph == "" {
		return "", decimal.Zero, fmt.Errorf("%w: reels are empty", ErrNoActiveRound)
	}
	for _, s := range p.Reels[1:] {
		if s.Glyph != first.Glyph {
			return OutcomeLoss, decimal.Zero, nil
		}
	}
	return OutcomeWin, decimal.NewFromInt(first.Multiplier), nil
}

// ResolveSlot результат по выпавшим барабанам
func ResolveSlot(stake decimal.Decimal, reels Reels) (RoundResult, error) {
	return Resolve(Rules{}, stake, SlotPlay{Reels: reels})
}
