package model

import "time"

// Роли участников плана. У каждого плана ровно один владелец.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Participant представляет связь пользователя с планом и его роль в нем.
type Participant struct {
	ID        int       `db:"id" json:"id"`
	PlanID    int       `db:"plan_id" json:"plan_id"`
	ProfileID int       `db:"profile_id" json:"profile_id"`
	Role      string    `db:"role" json:"role"`
	JoinedAt  time.Time `db:"joined_at" json:"joined_at"`
}

// CanEdit сообщает, может ли участник изменять содержимое плана.
func (p *Participant) CanEdit() bool {
	return p.Role == RoleOwner || p.Role == RoleEditor
}

// ParticipantInfo - участник вместе с данными профиля и флагом присутствия.
type ParticipantInfo struct {
	Participant
	Nickname  string `db:"nickname" json:"nickname"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
	IsOnline  bool   `db:"-" json:"is_online"` // заполняется из снимка присутствия, не хранится
}
