package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	accountAPI "minigames_backend/internal/api/account"
	authAPI "minigames_backend/internal/api/auth"
	blackjackAPI "minigames_backend/internal/api/blackjack"
	leaderboardAPI "minigames_backend/internal/api/leaderboard"
	rouletteAPI "minigames_backend/internal/api/roulette"
	slotAPI "minigames_backend/internal/api/slot"
	"minigames_backend/internal/engine"
	"minigames_backend/internal/repository/stats_repo"
	"minigames_backend/internal/service/account"
	"minigames_backend/internal/service/auth"
	"minigames_backend/internal/service/blackjack"
	"minigames_backend/internal/service/leaderboard"
	"minigames_backend/internal/service/roulette"
	"minigames_backend/internal/service/servicetest"
	"minigames_backend/internal/service/slot"
	"minigames_backend/internal/service/wager"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type jwtCfg struct{}

func (jwtCfg) AccessTokenSecretKey() []byte        { return []byte("router-secret") }
func (jwtCfg) AccessTokenDuration() time.Duration  { return time.Minute }
func (jwtCfg) RefreshTokenDuration() time.Duration { return time.Hour }

// testServer роутер на настоящих сервисах и in-memory репозиториях.
// Слот всегда выдает три вишни, рулетка - 7
func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	decimal.MarshalJSONWithoutQuotes = true

	log := zap.NewNop()
	users := servicetest.NewUsers()
	sessions := servicetest.NewSessions(users)
	logs := servicetest.NewBetLogs()
	rounds := servicetest.NewRounds()
	board := servicetest.NewLeaderboard()
	stats := stats_repo.NewStatsRepository(0)
	tx := servicetest.NewTxManager(users, sessions, logs, rounds)
	rules := engine.DefaultRules()
	ledger := wager.NewLedger(users, logs, stats, board, log)

	h := handlers{
		auth: authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: auth.NewAuthService(tx, users, sessions, jwtCfg{}, decimal.NewFromInt(1000)),
			Log:  log,
		}),
		account: accountAPI.NewHandler(accountAPI.HandlerDeps{
			Serv: account.NewAccountService(users, logs),
			Log:  log,
		}),
		blackjack: blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{
			Serv: blackjack.NewBlackjackService(rounds, ledger, tx, rules, engine.NewSeededRNG(3)),
			Log:  log,
		}),
		roulette: rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: roulette.NewRouletteService(ledger, tx, rules, servicetest.FixedRNG{Int: 7}),
			Log:  log,
		}),
		slot: slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: slot.NewSlotService(ledger, tx, rules, servicetest.FixedRNG{Float: 0}),
			Log:  log,
		}),
		leaderboard: leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{
			Serv: leaderboard.NewLeaderboardService(board, users, stats, log),
			Log:  log,
		}),
	}

	srv := httptest.NewServer(newRouter(h, jwtCfg{}.AccessTokenSecretKey()))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := srv.Client().Do(r)
	require.NoError(t, err)
	defer res.Body.Close()

	var out map[string]any
	if res.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(res.Body).Decode(&out)
	}
	return res.StatusCode, out
}

func registerUser(t *testing.T, srv *httptest.Server, login string) string {
	t.Helper()
	status, body := call(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"name": login, "login": login, "password": "pw",
	})
	require.Equal(t, http.StatusCreated, status)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_SlotFlow(t *testing.T) {
	srv := testServer(t)
	token := registerUser(t, srv, "ann")

	status, me := call(t, srv, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1000.0, me["balance"])

	status, spin := call(t, srv, http.MethodPost, "/slot/spin", token, map[string]any{"bet": 100})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1400.0, spin["balance"])
	result := spin["result"].(map[string]any)
	assert.Equal(t, "win", result["outcome"])
	assert.Equal(t, 5.0, result["multiplier"])
	assert.Equal(t, 400.0, result["payout"])
	assert.Equal(t, 500.0, result["credit"])

	status, _ = call(t, srv, http.MethodGet, "/leaderboard?game=slot", "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, stats := call(t, srv, http.MethodGet, "/stats/slot", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, stats["total_rounds"])
}

func TestRouter_Errors(t *testing.T) {
	srv := testServer(t)
	token := registerUser(t, srv, "bob")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		status int
	}{
		{"no token", http.MethodGet, "/me", "", nil, http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/me", "garbage", nil, http.StatusUnauthorized},
		{"incomplete roulette selection", http.MethodPost, "/roulette/spin", token, map[string]any{"bet": 10, "bet_type": "pick2", "numbers": []int{1}}, http.StatusBadRequest},
		{"unknown field", http.MethodPost, "/slot/spin", token, map[string]any{"bet": 100, "balance": 1e9}, http.StatusBadRequest},
		{"stake over balance", http.MethodPost, "/slot/spin", token, map[string]any{"bet": 5000}, http.StatusPaymentRequired},
		{"below min bet", http.MethodPost, "/slot/spin", token, map[string]any{"bet": 10}, http.StatusBadRequest},
		{"fraction of a cent", http.MethodPost, "/roulette/spin", token, map[string]any{"bet": 1.005, "bet_type": "red"}, http.StatusBadRequest},
		{"hit without round", http.MethodPost, "/blackjack/hit", token, nil, http.StatusNotFound},
		{"unknown game stats", http.MethodGet, "/stats/poker", "", nil, http.StatusBadRequest},
		{"login taken", http.MethodPost, "/auth/register", "", map[string]string{"login": "bob", "password": "x"}, http.StatusConflict},
		{"wrong password", http.MethodPost, "/auth/login", "", map[string]string{"login": "bob", "password": "x"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, srv, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRouter_BlackjackRound(t *testing.T) {
	srv := testServer(t)
	token := registerUser(t, srv, "cid")

	status, deal := call(t, srv, http.MethodPost, "/blackjack/deal", token, map[string]any{"bet": 100})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, deal["dealer_hidden"])
	assert.Len(t, deal["dealer"], 1)
	assert.Len(t, deal["player"], 2)
	assert.Equal(t, 900.0, deal["balance"])

	status, _ = call(t, srv, http.MethodPost, "/blackjack/deal", token, map[string]any{"bet": 100})
	assert.Equal(t, http.StatusConflict, status)

	status, round := call(t, srv, http.MethodGet, "/blackjack/round", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, round["finished"])

	status, stand := call(t, srv, http.MethodPost, "/blackjack/stand", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, stand["finished"])
	assert.Equal(t, false, stand["dealer_hidden"])
	assert.NotNil(t, stand["result"])

	status, _ = call(t, srv, http.MethodGet, "/blackjack/round", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, bets := callList(t, srv, "/me/bets", token)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, bets, 1)
}

func callList(t *testing.T, srv *httptest.Server, path, token string) (int, []any) {
	t.Helper()
	r, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	r.Header.Set("Authorization", "Bearer "+token)

	res, err := srv.Client().Do(r)
	require.NoError(t, err)
	defer res.Body.Close()

	var out []any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}
