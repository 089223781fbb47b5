package model

import "time"

// BotLink представляет привязку Telegram-чата к профилю пользователя.
type BotLink struct {
	ID        int       `db:"id" json:"id"`
	ProfileID int       `db:"profile_id" json:"profile_id"`
	ChatID    int64     `db:"chat_id" json:"chat_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PlanSubscription представляет подписку Telegram-чата на уведомления по плану.
type PlanSubscription struct {
	ID     int   `db:"id" json:"id"`
	ChatID int64 `db:"chat_id" json:"chat_id"`
	PlanID int   `db:"plan_id" json:"plan_id"`
}
