package model

import "time"

// Статусы доступа по умолчанию для присоединившихся по ссылке.
const (
	PermissionEditor = "editor"
	PermissionViewer = "viewer"
)

// Plan представляет план путешествия, созданный пользователем и доступный участникам.
type Plan struct {
	ID                int       `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	Location          string    `db:"location" json:"location"`
	StartDate         time.Time `db:"start_date" json:"start_date"`
	EndDate           time.Time `db:"end_date" json:"end_date"`
	OwnerID           int       `db:"owner_id" json:"owner_id"`
	TargetBudget      int64     `db:"target_budget" json:"target_budget"`
	BudgetCurrency    string    `db:"budget_currency" json:"budget_currency"` // код валюты, например "KRW"
	ShareID           string    `db:"share_id" json:"share_id"`               // UUID ссылки-приглашения
	ShareClosed       bool      `db:"share_closed" json:"share_closed"`       // ссылка закрыта владельцем
	DefaultPermission string    `db:"default_permission" json:"default_permission"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Days возвращает длительность плана в днях (минимум 1).
func (p *Plan) Days() int {
	days := int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}
