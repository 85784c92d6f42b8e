package auth

import "context"

// Logout закрывает сессию. Неизвестная сессия - не ошибка
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}
