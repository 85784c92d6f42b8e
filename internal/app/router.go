package app

import (
	"net/http"
	"time"

	accountAPI "minigames_backend/internal/api/account"
	authAPI "minigames_backend/internal/api/auth"
	blackjackAPI "minigames_backend/internal/api/blackjack"
	leaderboardAPI "minigames_backend/internal/api/leaderboard"
	rouletteAPI "minigames_backend/internal/api/roulette"
	slotAPI "minigames_backend/internal/api/slot"
	"minigames_backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const requestTimeout = 10 * time.Second

type handlers struct {
	auth        *authAPI.Handler
	account     *accountAPI.Handler
	blackjack   *blackjackAPI.Handler
	roulette    *rouletteAPI.Handler
	slot        *slotAPI.Handler
	leaderboard *leaderboardAPI.Handler
}

func newRouter(h handlers, accessSecret []byte) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth endpoints
	r.Route("/auth", func(rr chi.Router) {
		rr.Post("/register", h.auth.Register)
		rr.Post("/login", h.auth.Login)
		rr.Post("/refresh", h.auth.Refresh)
		rr.Post("/logout", h.auth.Logout)
	})

	// Публичные
	r.Get("/leaderboard", h.leaderboard.Top)
	r.Get("/stats/{game}", h.leaderboard.Stats)

	// Только с access токеном
	r.Group(func(rr chi.Router) {
		rr.Use(middleware.Auth(accessSecret))

		rr.Get("/me", h.account.Me)
		rr.Get("/me/bets", h.account.Bets)

		rr.Route("/blackjack", func(br chi.Router) {
			br.Post("/deal", h.blackjack.Deal)
			br.Post("/hit", h.blackjack.Hit)
			br.Post("/stand", h.blackjack.Stand)
			br.Get("/round", h.blackjack.Round)
		})

		rr.Post("/roulette/spin", h.roulette.Spin)
		rr.Post("/slot/spin", h.slot.Spin)
	})

	return r
}
