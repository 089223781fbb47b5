package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// TodoRepository обеспечивает доступ к задачам плана в базе данных.
type TodoRepository struct {
	db *sqlx.DB
}

// NewTodoRepository создает новый репозиторий задач.
func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create добавляет задачу. Возвращает ID созданной задачи.
func (r *TodoRepository) Create(t *model.Todo) (int, error) {
	query := `INSERT INTO todos (plan_id, content, assignee_id, completed, priority, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRow(query, t.PlanID, t.Content, t.AssigneeID, t.Completed, t.Priority, t.CreatedBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать задачу: %w", err)
	}
	return id, nil
}

// GetByID возвращает задачу по ID.
func (r *TodoRepository) GetByID(id int) (*model.Todo, error) {
	var t model.Todo
	err := r.db.Get(&t, "SELECT * FROM todos WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByPlan возвращает задачи плана: сначала невыполненные, затем по дате.
func (r *TodoRepository) ListByPlan(planID int) ([]model.Todo, error) {
	todos := []model.Todo{}
	err := r.db.Select(&todos,
		"SELECT * FROM todos WHERE plan_id=$1 ORDER BY completed, created_at", planID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении задач плана: %w", err)
	}
	return todos, nil
}

// Update обновляет задачу.
func (r *TodoRepository) Update(t *model.Todo) error {
	_, err := r.db.Exec(
		`UPDATE todos SET content=$1, assignee_id=$2, completed=$3, priority=$4, updated_at=NOW() WHERE id=$5`,
		t.Content, t.AssigneeID, t.Completed, t.Priority, t.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить задачу: %w", err)
	}
	return nil
}

// Delete удаляет задачу.
func (r *TodoRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM todos WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить задачу: %w", err)
	}
	return nil
}
