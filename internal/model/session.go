package model

import "time"

// Session представляет авторизованную сессию пользователя (cookie-токен).
type Session struct {
	Token     string    `db:"token" json:"-"`
	ProfileID int       `db:"profile_id" json:"profile_id"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired сообщает, истекла ли сессия на момент now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
