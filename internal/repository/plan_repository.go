package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// PlanRepository обеспечивает доступ к данным планов путешествий.
type PlanRepository struct {
	db *sqlx.DB
}

// NewPlanRepository создает новый репозиторий планов.
func NewPlanRepository(db *sqlx.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create создает план и запись владельца одной транзакцией.
// Возвращает ID созданного плана.
func (r *PlanRepository) Create(p *model.Plan) (int, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	var id int
	err = tx.QueryRow(
		`INSERT INTO plans (title, location, start_date, end_date, owner_id, target_budget, budget_currency, share_id, default_permission)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		p.Title, p.Location, p.StartDate, p.EndDate, p.OwnerID, p.TargetBudget, p.BudgetCurrency, p.ShareID, p.DefaultPermission,
	).Scan(&id)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("не удалось создать план: %w", err)
	}
	_, err = tx.Exec(`INSERT INTO participants (plan_id, profile_id, role) VALUES ($1, $2, $3)`,
		id, p.OwnerID, model.RoleOwner)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("не удалось добавить владельца в участники: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID возвращает план по ID.
func (r *PlanRepository) GetByID(id int) (*model.Plan, error) {
	var p model.Plan
	err := r.db.Get(&p, "SELECT * FROM plans WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByShareID возвращает план по идентификатору ссылки-приглашения.
func (r *PlanRepository) GetByShareID(shareID string) (*model.Plan, error) {
	var p model.Plan
	err := r.db.Get(&p, "SELECT * FROM plans WHERE share_id=$1", shareID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByProfile возвращает планы, в которых пользователь участвует,
// упорядоченные по дате начала.
func (r *PlanRepository) ListByProfile(profileID int) ([]model.Plan, error) {
	plans := []model.Plan{}
	err := r.db.Select(&plans,
		`SELECT p.* FROM plans p
		 JOIN participants pt ON pt.plan_id = p.id
		 WHERE pt.profile_id=$1
		 ORDER BY p.start_date`, profileID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка планов: %w", err)
	}
	return plans, nil
}

// Update обновляет основные поля плана.
func (r *PlanRepository) Update(p *model.Plan) error {
	_, err := r.db.Exec(
		`UPDATE plans SET title=$1, location=$2, start_date=$3, end_date=$4,
		        target_budget=$5, budget_currency=$6, default_permission=$7, share_closed=$8, updated_at=NOW()
		 WHERE id=$9`,
		p.Title, p.Location, p.StartDate, p.EndDate, p.TargetBudget, p.BudgetCurrency,
		p.DefaultPermission, p.ShareClosed, p.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить план: %w", err)
	}
	return nil
}

// Delete удаляет план; связанные записи удаляются каскадом на уровне БД.
func (r *PlanRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM plans WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить план: %w", err)
	}
	return nil
}
