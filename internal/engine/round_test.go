package engine

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIsIdempotent(t *testing.T) {
	rules := DefaultRules()
	stake := decimal.NewFromInt(150)
	cherry := DefaultSlotSymbols()[0]

	plays := []Play{
		BlackjackPlay{Player: Hand(cards(t, "A", "9")), Dealer: Hand(cards(t, "10", "7"))},
		RoulettePlay{Bet: RouletteBet{Type: BetPick3, Numbers: []int{1, 2, 3}}, Winning: 2},
		SlotPlay{Reels: Reels{cherry, cherry, cherry}},
	}

	for _, p := range plays {
		t.Run(string(p.Game()), func(t *testing.T) {
			first, err := Resolve(rules, stake, p)
			require.NoError(t, err)
			second, err := Resolve(rules, stake, p)
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.Equal(t, p.Game(), first.Game)
		})
	}
}

func TestResolveRejectsBadStake(t *testing.T) {
	play := RoulettePlay{Bet: RouletteBet{Type: BetRed}, Winning: 7}

	_, err := Resolve(DefaultRules(), decimal.Zero, play)
	assert.ErrorIs(t, err, ErrInvalidBet)

	_, err = Resolve(DefaultRules(), decimal.NewFromInt(-5), play)
	assert.ErrorIs(t, err, ErrInvalidBet)

	_, err = Resolve(DefaultRules(), decimal.RequireFromString("1.005"), play)
	assert.ErrorIs(t, err, ErrInvalidBet)

	_, err = Resolve(DefaultRules(), decimal.NewFromInt(5), nil)
	assert.ErrorIs(t, err, ErrIncompleteSelection)
}

func TestCreditIsRoundedDownToCents(t *testing.T) {
	// 1.11 * 1.8 = 1.998
	res, err := ResolveBlackjackRound(DefaultRules(), decimal.RequireFromString("1.11"),
		Hand(cards(t, "10", "9")), Hand(cards(t, "10", "7")))
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, res.Outcome)
	assert.True(t, res.Credit().Equal(decimal.RequireFromString("3.10")), res.Credit().String())
	assert.True(t, res.Payout.Equal(decimal.RequireFromString("1.99")), res.Payout.String())
	assert.True(t, res.Credit().Equal(res.Credit().Round(2)))
}

func TestValidateStake(t *testing.T) {
	floor := decimal.NewFromInt(100)
	d := decimal.NewFromInt

	tests := []struct {
		name    string
		stake   decimal.Decimal
		balance decimal.Decimal
		wantErr bool
	}{
		{"ok", d(100), d(1000), false},
		{"all in", d(1000), d(1000), false},
		{"zero", d(0), d(1000), true},
		{"negative", d(-1), d(1000), true},
		{"below floor", d(99), d(1000), true},
		{"above balance", d(1001), d(1000), true},
		{"floor relaxed for small balance", d(30), d(50), false},
		{"relaxed floor still capped by balance", d(60), d(50), true},
		{"balance equal to floor keeps floor", d(50), d(100), true},
		{"whole cents", decimal.RequireFromString("100.50"), d(1000), false},
		{"fraction of a cent", decimal.RequireFromString("100.005"), d(1000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStake(tt.stake, tt.balance, floor)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBet)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRulesValidate(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())

	r := DefaultRules()
	r.SlotSymbols = nil
	assert.Error(t, r.Validate())

	r = DefaultRules()
	r.SlotSymbols = append(r.SlotSymbols, r.SlotSymbols[0])
	assert.Error(t, r.Validate())

	r = DefaultRules()
	r.SlotSymbols = []SlotSymbol{{Glyph: "x", Weight: 0, Multiplier: 2}}
	assert.Error(t, r.Validate())

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		r = DefaultRules()
		r.SlotSymbols = []SlotSymbol{{Glyph: "x", Weight: w, Multiplier: 2}}
		assert.Error(t, r.Validate(), "weight %v", w)
	}

	r = DefaultRules()
	r.BlackjackWin = decimal.NewFromInt(-1)
	assert.Error(t, r.Validate())

	assert.True(t, DefaultRules().MinBet(GameRoulette).Equal(decimal.NewFromInt(1)))
	assert.True(t, DefaultRules().MinBet("poker").IsZero())
}

func TestGameTypeValid(t *testing.T) {
	assert.True(t, GameSlot.Valid())
	assert.False(t, GameType("poker").Valid())
}
