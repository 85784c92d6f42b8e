package blackjack

import (
	"net/http"

	"minigames_backend/internal/api"
	dto "minigames_backend/internal/api/dto/blackjack"
	"minigames_backend/internal/converter"
	"minigames_backend/internal/model"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/req"
	"minigames_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.BlackjackService
	Log  *zap.Logger
}

type Handler struct {
	serv service.BlackjackService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DealRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.serv.Deal(r.Context(), converter.ToBlackjackDeal(payload))
	h.write(w, r, view, err)
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Hit(r.Context())
	h.write(w, r, view, err)
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Stand(r.Context())
	h.write(w, r, view, err)
}

func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	view, err := h.serv.Round(r.Context())
	h.write(w, r, view, err)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, view *model.BlackjackView, err error) {
	if err != nil {
		api.WriteError(w, r, h.log, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackResponse(*view))
}
