package env

import (
	"errors"
	"fmt"
	"os"

	"minigames_backend/internal/config"
	"minigames_backend/internal/engine"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	defaultStartBalance = 1000
	defaultStatsWindow  = 500
)

// Файл config.yaml. Суммы строками, чтобы не терять точность
type gamesFile struct {
	StartBalance string `yaml:"start_balance"`
	StatsWindow  int    `yaml:"stats_window"`
	Blackjack    struct {
		MinBet        string `yaml:"min_bet"`
		WinMultiplier string `yaml:"win_multiplier"`
	} `yaml:"blackjack"`
	Roulette struct {
		MinBet string `yaml:"min_bet"`
	} `yaml:"roulette"`
	Slot struct {
		MinBet  string              `yaml:"min_bet"`
		Symbols []engine.SlotSymbol `yaml:"symbols"`
	} `yaml:"slot"`
}

type gamesConfig struct {
	rules        engine.Rules
	startBalance decimal.Decimal
	statsWindow  int
}

// NewGamesConfigFromYAML читает правила игр. Нет файла или ключа - значения по умолчанию
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	var f gamesFile

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return newGamesConfig(f)
}

func newGamesConfig(f gamesFile) (config.GamesConfig, error) {
	rules := engine.DefaultRules()
	cfg := &gamesConfig{
		startBalance: decimal.NewFromInt(defaultStartBalance),
		statsWindow:  defaultStatsWindow,
	}

	amounts := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"start_balance", f.StartBalance, &cfg.startBalance},
		{"blackjack.min_bet", f.Blackjack.MinBet, &rules.BlackjackMinBet},
		{"blackjack.win_multiplier", f.Blackjack.WinMultiplier, &rules.BlackjackWin},
		{"roulette.min_bet", f.Roulette.MinBet, &rules.RouletteMinBet},
		{"slot.min_bet", f.Slot.MinBet, &rules.SlotMinBet},
	}
	for _, a := range amounts {
		if a.raw == "" {
			continue
		}
		v, err := decimal.NewFromString(a.raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.name, err)
		}
		*a.dst = v
	}

	if len(f.Slot.Symbols) > 0 {
		rules.SlotSymbols = f.Slot.Symbols
	}
	if f.StatsWindow > 0 {
		cfg.statsWindow = f.StatsWindow
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if cfg.startBalance.IsNegative() {
		return nil, fmt.Errorf("start_balance must be >= 0, got %s", cfg.startBalance)
	}

	cfg.rules = rules
	return cfg, nil
}

func (cfg *gamesConfig) Rules() engine.Rules {
	return cfg.rules
}

func (cfg *gamesConfig) StartBalance() decimal.Decimal {
	return cfg.startBalance
}

func (cfg *gamesConfig) StatsWindow() int {
	return cfg.statsWindow
}
