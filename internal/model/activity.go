package model

import "time"

// Типы действий в журнале активности.
const (
	ActionBlockCreated = "block_created"
	ActionBlockUpdated = "block_updated"
	ActionBlockMoved   = "block_moved"
	ActionBlockDeleted = "block_deleted"
	ActionTodoCreated  = "todo_created"
	ActionTodoUpdated  = "todo_updated"
	ActionTodoDeleted  = "todo_deleted"
	ActionMemberJoined = "member_joined"
	ActionRoleChanged  = "role_changed"
	ActionPlanUpdated  = "plan_updated"
)

// Activity представляет запись журнала действий по плану.
// Журнал только пополняется и используется исключительно для отображения.
type Activity struct {
	ID        int       `db:"id" json:"id"`
	PlanID    int       `db:"plan_id" json:"plan_id"`
	ProfileID int       `db:"profile_id" json:"profile_id"`
	Action    string    `db:"action" json:"action"`
	Detail    string    `db:"detail" json:"detail"` // краткое человекочитаемое описание, например название блока
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
