package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// ParticipantRepository обеспечивает доступ к данным участников планов.
type ParticipantRepository struct {
	db *sqlx.DB
}

// NewParticipantRepository создает новый репозиторий участников.
func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Get возвращает участие пользователя в плане.
// Возвращает sql.ErrNoRows, если пользователь не участник.
func (r *ParticipantRepository) Get(planID, profileID int) (*model.Participant, error) {
	var p model.Participant
	err := r.db.Get(&p, "SELECT * FROM participants WHERE plan_id=$1 AND profile_id=$2", planID, profileID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByPlan возвращает участников плана вместе с данными профилей.
func (r *ParticipantRepository) ListByPlan(planID int) ([]model.ParticipantInfo, error) {
	participants := []model.ParticipantInfo{}
	err := r.db.Select(&participants,
		`SELECT pt.*, pr.nickname, pr.avatar_url
		 FROM participants pt
		 JOIN profiles pr ON pr.id = pt.profile_id
		 WHERE pt.plan_id=$1
		 ORDER BY pt.joined_at`, planID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении участников плана: %w", err)
	}
	return participants, nil
}

// UpdateRole изменяет роль участника.
func (r *ParticipantRepository) UpdateRole(planID, profileID int, role string) error {
	_, err := r.db.Exec("UPDATE participants SET role=$1 WHERE plan_id=$2 AND profile_id=$3",
		role, planID, profileID)
	if err != nil {
		return fmt.Errorf("не удалось изменить роль участника: %w", err)
	}
	return nil
}

// Delete исключает участника из плана.
func (r *ParticipantRepository) Delete(planID, profileID int) error {
	_, err := r.db.Exec("DELETE FROM participants WHERE plan_id=$1 AND profile_id=$2", planID, profileID)
	if err != nil {
		return fmt.Errorf("не удалось исключить участника: %w", err)
	}
	return nil
}
