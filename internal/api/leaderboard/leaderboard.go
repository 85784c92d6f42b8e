package leaderboard

import (
	"net/http"
	"strconv"

	"minigames_backend/internal/api"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.LeaderboardService
	Log  *zap.Logger
}

type Handler struct {
	serv service.LeaderboardService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Top ?game=slot&limit=3. Без game - по всем играм
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.serv.Top(r.Context(), query.Get("game"), limit)
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries))
}

// Stats RTP заведения по игре из пути /stats/{game}
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.HouseStats(r.Context(), chi.URLParam(r, "game"))
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}
