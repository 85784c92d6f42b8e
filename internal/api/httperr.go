package api

import (
	"errors"
	"net/http"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/resp"

	"go.uber.org/zap"
)

// StatusOf HTTP статус для ошибки сервиса
func StatusOf(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidBet),
		errors.Is(err, engine.ErrIncompleteSelection),
		errors.Is(err, service.ErrUnknownGame):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, engine.ErrNoActiveRound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrRoundInProgress),
		errors.Is(err, engine.ErrDeckExhausted),
		errors.Is(err, service.ErrLoginTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет ошибку клиенту. Текст внутренних ошибок уходит только в лог
func WriteError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
