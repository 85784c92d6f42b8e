package app

import (
	"context"

	accountAPI "minigames_backend/internal/api/account"
	authAPI "minigames_backend/internal/api/auth"
	blackjackAPI "minigames_backend/internal/api/blackjack"
	leaderboardAPI "minigames_backend/internal/api/leaderboard"
	rouletteAPI "minigames_backend/internal/api/roulette"
	slotAPI "minigames_backend/internal/api/slot"
	"minigames_backend/internal/config"
	"minigames_backend/internal/config/env"
	"minigames_backend/internal/engine"
	"minigames_backend/internal/logger"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/repository/auth_repo"
	"minigames_backend/internal/repository/bet_log_repo"
	"minigames_backend/internal/repository/blackjack_repo"
	"minigames_backend/internal/repository/leaderboard_repo"
	"minigames_backend/internal/repository/stats_repo"
	"minigames_backend/internal/repository/user_repo"
	"minigames_backend/internal/service"
	"minigames_backend/internal/service/account"
	"minigames_backend/internal/service/auth"
	"minigames_backend/internal/service/blackjack"
	"minigames_backend/internal/service/leaderboard"
	"minigames_backend/internal/service/roulette"
	"minigames_backend/internal/service/slot"
	"minigames_backend/internal/service/wager"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	log    *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis (необязателен)
	redisCfg    config.RedisConfig
	redisClient redis.UniversalClient

	// Game rules
	gamesCfg config.GamesConfig
	rng      engine.RandomSource

	// Auth and user bits
	jwtCfg      config.JWTConfig
	authRepo    repository.AuthRepository
	userRepo    repository.UserRepository
	authServ    service.AuthService
	authHand    *authAPI.Handler
	accountServ service.AccountService
	accountHand *accountAPI.Handler

	// Shared wager bits
	betLogRepo      repository.BetLogRepository
	statsRepo       repository.StatsRepository
	leaderboardRepo repository.LeaderboardRepository
	ledger          *wager.Ledger

	// Blackjack bits
	blackjackRepo repository.BlackjackRepository
	blackjackServ service.BlackjackService
	blackjackHand *blackjackAPI.Handler

	// Roulette bits
	rouletteServ service.RouletteService
	rouletteHand *rouletteAPI.Handler

	// Slot bits
	slotServ service.SlotService
	slotHand *slotAPI.Handler

	// Leaderboard bits
	leaderboardServ service.LeaderboardService
	leaderboardHand *leaderboardAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

// Close закрывает соединения с хранилищами
func (sp *ServiceProvider) Close() {
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LogCfg().Level(), sp.LogCfg().Development())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

// RedisClient nil, если REDIS_ADDR не задан
func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisClient == nil && sp.RedisCfg().Addr() != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     sp.RedisCfg().Addr(),
			Password: sp.RedisCfg().Password(),
			DB:       sp.RedisCfg().DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) RNG() engine.RandomSource {
	if sp.rng == nil {
		sp.rng = engine.DefaultRNG()
	}
	return sp.rng
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.GamesCfg().StartBalance(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(sp.UserRepo(ctx), sp.BetLogRepository(ctx))
	}
	return sp.accountServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{
			Serv: sp.AccountService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) BetLogRepository(ctx context.Context) repository.BetLogRepository {
	if sp.betLogRepo == nil {
		sp.betLogRepo = bet_log_repo.NewBetLogRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.betLogRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GamesCfg().StatsWindow())
	}
	return sp.statsRepo
}

// LeaderboardRepository redis, если он настроен, иначе агрегат по bet_logs
func (sp *ServiceProvider) LeaderboardRepository(ctx context.Context) repository.LeaderboardRepository {
	if sp.leaderboardRepo == nil {
		if rdb := sp.RedisClient(ctx); rdb != nil {
			sp.leaderboardRepo = leaderboard_repo.NewRedisLeaderboard(rdb)
		} else {
			sp.leaderboardRepo = leaderboard_repo.NewPostgresLeaderboard(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
		}
	}
	return sp.leaderboardRepo
}

func (sp *ServiceProvider) Ledger(ctx context.Context) *wager.Ledger {
	if sp.ledger == nil {
		sp.ledger = wager.NewLedger(
			sp.UserRepo(ctx),
			sp.BetLogRepository(ctx),
			sp.StatsRepository(),
			sp.LeaderboardRepository(ctx),
			sp.Logger(),
		)
	}
	return sp.ledger
}

func (sp *ServiceProvider) BlackjackRepository(ctx context.Context) repository.BlackjackRepository {
	if sp.blackjackRepo == nil {
		sp.blackjackRepo = blackjack_repo.NewBlackjackRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.blackjackRepo
}

func (sp *ServiceProvider) BlackjackService(ctx context.Context) service.BlackjackService {
	if sp.blackjackServ == nil {
		sp.blackjackServ = blackjack.NewBlackjackService(
			sp.BlackjackRepository(ctx),
			sp.Ledger(ctx),
			sp.TXManager(ctx),
			sp.GamesCfg().Rules(),
			sp.RNG(),
		)
	}
	return sp.blackjackServ
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{
			Serv: sp.BlackjackService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(sp.Ledger(ctx), sp.TXManager(ctx), sp.GamesCfg().Rules(), sp.RNG())
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: sp.RouletteService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.Ledger(ctx), sp.TXManager(ctx), sp.GamesCfg().Rules(), sp.RNG())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.leaderboardServ == nil {
		sp.leaderboardServ = leaderboard.NewLeaderboardService(
			sp.LeaderboardRepository(ctx),
			sp.UserRepo(ctx),
			sp.StatsRepository(),
			sp.Logger(),
		)
	}
	return sp.leaderboardServ
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *leaderboardAPI.Handler {
	if sp.leaderboardHand == nil {
		sp.leaderboardHand = leaderboardAPI.NewHandler(leaderboardAPI.HandlerDeps{
			Serv: sp.LeaderboardService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.leaderboardHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = newRouter(handlers{
			auth:        sp.AuthHandler(ctx),
			account:     sp.AccountHandler(ctx),
			blackjack:   sp.BlackjackHandler(ctx),
			roulette:    sp.RouletteHandler(ctx),
			slot:        sp.SlotHandler(ctx),
			leaderboard: sp.LeaderboardHandler(ctx),
		}, sp.JWTCfg().AccessTokenSecretKey())
	}

	return sp.router
}
