package account

import (
	"net/http"
	"strconv"

	"minigames_backend/internal/api"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.AccountService
	Log  *zap.Logger
}

type Handler struct {
	serv service.AccountService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Me профиль и баланс
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Profile(r.Context())
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(*user))
}

// Bets история ставок, ?limit=N
func (h *Handler) Bets(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	bets, err := h.serv.Bets(r.Context(), limit)
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBetResponses(bets))
}
