package auth

import (
	"context"
	"errors"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/pass"
	"minigames_backend/pkg/token"
)

func (s *serv) Login(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Получение пользователя из бд по логину
	stored, err := s.userRepo.GetUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrUnauthorized
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(stored.Password, user.Password) {
		return nil, service.ErrUnauthorized
	}

	return s.openSession(ctx, stored)
}

// openSession создает сессию с refresh токеном и выдает access токен
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	sessionID := generateSessionID()

	refreshToken, err := token.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	session := model.NewSession(sessionID, user.ID, refreshToken.Hash, s.now(), s.jwtConfig.RefreshTokenDuration())
	if err := s.authRepo.CreateSession(ctx, &session); err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Value,
		SessionID:    sessionID,
	}, nil
}
