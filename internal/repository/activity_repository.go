package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// ActivityRepository обеспечивает работу с журналом действий по плану.
// Журнал только пополняется, записи никогда не изменяются.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository создает новый репозиторий журнала действий.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append добавляет запись в журнал.
func (r *ActivityRepository) Append(a *model.Activity) error {
	_, err := r.db.Exec(`INSERT INTO activities (plan_id, profile_id, action, detail) VALUES ($1, $2, $3, $4)`,
		a.PlanID, a.ProfileID, a.Action, a.Detail)
	if err != nil {
		return fmt.Errorf("не удалось записать действие в журнал: %w", err)
	}
	return nil
}

// ListByPlan возвращает последние записи журнала плана (не более limit).
func (r *ActivityRepository) ListByPlan(planID, limit int) ([]model.Activity, error) {
	activities := []model.Activity{}
	err := r.db.Select(&activities,
		"SELECT * FROM activities WHERE plan_id=$1 ORDER BY id DESC LIMIT $2", planID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении журнала действий: %w", err)
	}
	return activities, nil
}
