package env

import (
	"os"
	"path/filepath"
	"testing"

	"minigames_backend/internal/engine"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGamesConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewGamesConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := engine.DefaultRules()
	assert.True(t, cfg.Rules().BlackjackWin.Equal(def.BlackjackWin))
	assert.Len(t, cfg.Rules().SlotSymbols, len(def.SlotSymbols))
	assert.True(t, cfg.StartBalance().Equal(decimal.NewFromInt(defaultStartBalance)))
	assert.Equal(t, defaultStatsWindow, cfg.StatsWindow())
}

func TestGamesConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
start_balance: "2500.50"
stats_window: 50
blackjack:
  min_bet: "10"
  win_multiplier: "2"
roulette:
  min_bet: "5"
slot:
  symbols:
    - glyph: "A"
      weight: 1
      multiplier: 3
    - glyph: "B"
      weight: 3
      multiplier: 1
`)

	cfg, err := NewGamesConfigFromYAML(path)
	require.NoError(t, err)

	rules := cfg.Rules()
	assert.True(t, rules.BlackjackMinBet.Equal(decimal.NewFromInt(10)))
	assert.True(t, rules.BlackjackWin.Equal(decimal.NewFromInt(2)))
	assert.True(t, rules.RouletteMinBet.Equal(decimal.NewFromInt(5)))
	// не задан - по умолчанию
	assert.True(t, rules.SlotMinBet.Equal(engine.DefaultRules().SlotMinBet))
	require.Len(t, rules.SlotSymbols, 2)
	assert.Equal(t, "A", rules.SlotSymbols[0].Glyph)
	assert.True(t, cfg.StartBalance().Equal(decimal.RequireFromString("2500.50")))
	assert.Equal(t, 50, cfg.StatsWindow())
}

func TestGamesConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad amount":       "blackjack:\n  min_bet: abc\n",
		"negative payout":  "blackjack:\n  win_multiplier: \"-1\"\n",
		"zero weight":      "slot:\n  symbols:\n    - glyph: A\n      weight: 0\n      multiplier: 1\n",
		"broken yaml":      "blackjack: [",
		"negative balance": "start_balance: \"-5\"\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewGamesConfigFromYAML(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
