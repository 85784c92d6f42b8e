package stats_repo

import (
	"sync"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	"github.com/shopspring/decimal"
)

// DefaultWindowSize размер окна последних раундов для RTP
const DefaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// Результат раунда для окна
type roundResult struct {
	staked   decimal.Decimal
	returned decimal.Decimal
}

// Состояние одной игры
type gameState struct {
	totalRounds int
	totalStaked decimal.Decimal
	totalReturn decimal.Decimal

	window       []roundResult
	windowStaked decimal.Decimal
	windowReturn decimal.Decimal
}

// Реализация репозитория статистики заведения в памяти процесса
type StatsRepo struct {
	mtx        sync.RWMutex
	windowSize int
	games      map[engine.GameType]*gameState
}

// NewStatsRepository Конструктор. windowSize <= 0 - берем DefaultWindowSize
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &StatsRepo{
		windowSize: windowSize,
		games:      make(map[engine.GameType]*gameState),
	}
}

// UpdateState Обновление состояния игры после раунда.
// returned - сколько вернулось игроку вместе со ставкой
func (r *StatsRepo) UpdateState(game engine.GameType, staked, returned decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	st, ok := r.games[game]
	if !ok {
		st = &gameState{window: make([]roundResult, 0, r.windowSize)}
		r.games[game] = st
	}

	st.totalRounds++
	st.totalStaked = st.totalStaked.Add(staked)
	st.totalReturn = st.totalReturn.Add(returned)

	st.window = append(st.window, roundResult{staked: staked, returned: returned})
	st.windowStaked = st.windowStaked.Add(staked)
	st.windowReturn = st.windowReturn.Add(returned)

	// Поддерживаем размер окна
	if len(st.window) > r.windowSize {
		old := st.window[0]
		st.window = st.window[1:]
		st.windowStaked = st.windowStaked.Sub(old.staked)
		st.windowReturn = st.windowReturn.Sub(old.returned)
	}
}

// Snapshot Копия статистики по игре. Для игры без раундов RTP равен 0
func (r *StatsRepo) Snapshot(game engine.GameType) model.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := model.HouseStats{
		Game:        string(game),
		TotalStaked: decimal.Zero,
		TotalReturn: decimal.Zero,
	}

	st, ok := r.games[game]
	if !ok {
		return stats
	}

	stats.TotalRounds = st.totalRounds
	stats.TotalStaked = st.totalStaked
	stats.TotalReturn = st.totalReturn
	stats.RTP = rtp(st.totalReturn, st.totalStaked)
	stats.WindowRTP = rtp(st.windowReturn, st.windowStaked)
	stats.WindowSize = len(st.window)

	return stats
}

func rtp(returned, staked decimal.Decimal) float64 {
	if !staked.IsPositive() {
		return 0
	}
	return returned.Div(staked).Mul(hundred).Round(2).InexactFloat64()
}
