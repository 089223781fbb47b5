package model

import "time"

// Profile представляет профиль пользователя приложения.
type Profile struct {
	ID        int       `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Nickname  string    `db:"nickname" json:"nickname"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
	LinkCode  *string   `db:"link_code" json:"-"` // одноразовый код для привязки Telegram-чата
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
