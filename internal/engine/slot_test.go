package engine

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbolByGlyph(t *testing.T, glyph string) SlotSymbol {
	t.Helper()
	for _, s := range DefaultSlotSymbols() {
		if s.Glyph == glyph {
			return s
		}
	}
	t.Fatalf("no symbol %q", glyph)
	return SlotSymbol{}
}

type fixedRNG struct{ f float64 }

func (r fixedRNG) IntN(int) int { return 0 }
func (r fixedRNG) Float64() float64 { return r.f }

func TestDrawSymbolBoundaries(t *testing.T) {
	symbols := DefaultSlotSymbols()

	assert.Equal(t, "🍒", DrawSymbol(fixedRNG{0}, symbols).Glyph)
	assert.Equal(t, "🍒", DrawSymbol(fixedRNG{4.99 / 18.5}, symbols).Glyph)
	assert.Equal(t, "🍋", DrawSymbol(fixedRNG{5.01 / 18.5}, symbols).Glyph)
	assert.Equal(t, "8️⃣", DrawSymbol(fixedRNG{0.9999}, symbols).Glyph)
	assert.Empty(t, DrawSymbol(fixedRNG{0.5}, nil).Glyph)
}

func TestDrawSymbolRoundingFallsBackToLastSymbol(t *testing.T) {
	// остаток не уходит в ноль ни на одном символе
	assert.Equal(t, "8️⃣", DrawSymbol(fixedRNG{1.5}, DefaultSlotSymbols()).Glyph)
}

func TestDrawSymbolFrequency(t *testing.T) {
	const n = 100000
	symbols := DefaultSlotSymbols()
	rng := NewSeededRNG(42)

	total := 0.0
	for _, s := range symbols {
		total += s.Weight
	}

	counts := make(map[string]int, len(symbols))
	for i := 0; i < n; i++ {
		counts[DrawSymbol(rng, symbols).Glyph]++
	}

	for _, s := range symbols {
		want := s.Weight / total
		got := float64(counts[s.Glyph]) / n
		assert.LessOrEqual(t, math.Abs(got-want), 0.01, "symbol %s: freq=%f want=%f", s.Glyph, got, want)
	}
}

func TestSpinReelsAllowsRepeats(t *testing.T) {
	reels := SpinReels(fixedRNG{0}, DefaultSlotSymbols())
	for _, s := range reels {
		assert.Equal(t, "🍒", s.Glyph)
	}
}

func TestResolveSlot(t *testing.T) {
	stake := decimal.NewFromInt(100)
	cherry := symbolByGlyph(t, "🍒")
	lemon := symbolByGlyph(t, "🍋")
	melon := symbolByGlyph(t, "🍉")
	seven := symbolByGlyph(t, "8️⃣")

	win, err := ResolveSlot(stake, Reels{cherry, cherry, cherry})
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, win.Outcome)
	assert.True(t, win.Gross)
	assert.True(t, win.Multiplier.Equal(decimal.NewFromInt(5)))
	assert.True(t, win.Credit().Equal(decimal.NewFromInt(500)), win.Credit().String())
	assert.True(t, win.Payout.Equal(decimal.NewFromInt(400)), win.Payout.String())

	jackpot, err := ResolveSlot(stake, Reels{seven, seven, seven})
	require.NoError(t, err)
	assert.True(t, jackpot.Multiplier.Equal(decimal.NewFromInt(100)))
	assert.True(t, jackpot.Credit().Equal(decimal.NewFromInt(10000)))

	loss, err := ResolveSlot(stake, Reels{cherry, lemon, melon})
	require.NoError(t, err)
	assert.Equal(t, OutcomeLoss, loss.Outcome)
	assert.True(t, loss.Multiplier.IsZero())
	assert.True(t, loss.Credit().IsZero())
	assert.True(t, loss.Payout.Equal(stake.Neg()))

	pair, err := ResolveSlot(stake, Reels{cherry, cherry, lemon})
	require.NoError(t, err)
	assert.Equal(t, OutcomeLoss, pair.Outcome)

	_, err = ResolveSlot(stake, Reels{})
	assert.Error(t, err)
}
