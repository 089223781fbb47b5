package model

import "time"

// Приоритеты задач.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Todo представляет задачу из общего списка дел плана.
type Todo struct {
	ID         int       `db:"id" json:"id"`
	PlanID     int       `db:"plan_id" json:"plan_id"`
	Content    string    `db:"content" json:"content"`
	AssigneeID *int      `db:"assignee_id" json:"assignee_id"` // участник плана, отвечающий за задачу (NULL - не назначена)
	Completed  bool      `db:"completed" json:"completed"`
	Priority   string    `db:"priority" json:"priority"`
	CreatedBy  int       `db:"created_by" json:"created_by"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
