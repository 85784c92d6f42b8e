package model

import "time"

// Session живет до ExpiresAt, refresh токен хранится хэшем
type Session struct {
	ID          string
	UserID      int
	RefreshHash string
	ExpiresAt   time.Time
}

func NewSession(id string, userID int, refreshHash string, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:          id,
		UserID:      userID,
		RefreshHash: refreshHash,
		ExpiresAt:   now.Add(ttl),
	}
}

// Active сессия еще не истекла на момент now
func (s Session) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
