package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	defaultBlackjackMinBet = 100
	defaultRouletteMinBet  = 1
	defaultSlotMinBet      = 100
)

var defaultBlackjackWin = decimal.RequireFromString("1.8")

// Rules настраиваемая часть правил. Таблица выплат рулетки статична и сюда не входит
type Rules struct {
	BlackjackMinBet decimal.Decimal
	BlackjackWin    decimal.Decimal
	RouletteMinBet  decimal.Decimal
	SlotMinBet      decimal.Decimal
	SlotSymbols     []SlotSymbol
}

// DefaultRules правила по умолчанию
func DefaultRules() Rules {
	return Rules{
		BlackjackMinBet: decimal.NewFromInt(defaultBlackjackMinBet),
		BlackjackWin:    defaultBlackjackWin,
		RouletteMinBet:  decimal.NewFromInt(defaultRouletteMinBet),
		SlotMinBet:      decimal.NewFromInt(defaultSlotMinBet),
		SlotSymbols:     DefaultSlotSymbols(),
	}
}

// MinBet минимальная ставка для игры
func (r Rules) MinBet(game GameType) decimal.Decimal {
	switch game {
	case GameBlackjack:
		return r.BlackjackMinBet
	case GameRoulette:
		return r.RouletteMinBet
	case GameSlot:
		return r.SlotMinBet
	}
	return decimal.Zero
}

// Validate проверяет конфигурацию (после загрузки из yaml)
func (r Rules) Validate() error {
	if r.BlackjackWin.IsNegative() {
		return fmt.Errorf("blackjack win multiplier must be >= 0, got %s", r.BlackjackWin)
	}
	for _, m := range []decimal.Decimal{r.BlackjackMinBet, r.RouletteMinBet, r.SlotMinBet} {
		if m.IsNegative() {
			return fmt.Errorf("min bet must be >= 0, got %s", m)
		}
	}
	if len(r.SlotSymbols) == 0 {
		return fmt.Errorf("slot symbols are empty")
	}
	seen := make(map[string]struct{}, len(r.SlotSymbols))
	for _, s := range r.SlotSymbols {
		if s.Glyph == "" {
			return fmt.Errorf("slot symbol without glyph")
		}
		if _, ok := seen[s.Glyph]; ok {
			return fmt.Errorf("duplicate slot symbol %q", s.Glyph)
		}
		seen[s.Glyph] = struct{}{}
		if !(s.Weight > 0) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf("slot symbol %q: weight must be positive", s.Glyph)
		}
		if s.Multiplier <= 0 {
			return fmt.Errorf("slot symbol %q: multiplier must be positive", s.Glyph)
		}
	}
	return nil
}
