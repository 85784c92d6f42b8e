package auth

import (
	"context"
	"errors"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"
	"minigames_backend/pkg/pass"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash
	user.Balance = s.startBalance

	var data *model.AuthData

	// Пользователь и сессия создаются в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(txCtx, user)
		if err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				return service.ErrLoginTaken
			}
			return err
		}

		data, err = s.openSession(txCtx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
