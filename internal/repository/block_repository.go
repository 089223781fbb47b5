package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// Статусы, возвращаемые функцией move_travel_block.
const (
	MoveStatusOK        = "OK"
	MoveStatusNotFound  = "NOT_FOUND"
	MoveStatusForbidden = "FORBIDDEN"
)

// BlockRepository обеспечивает доступ к блокам расписания в базе данных.
type BlockRepository struct {
	db *sqlx.DB
}

// NewBlockRepository создает новый репозиторий блоков.
func NewBlockRepository(db *sqlx.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// Create добавляет блок в конец указанного дня. Возвращает ID блока.
func (r *BlockRepository) Create(b *model.Block) (int, error) {
	var order int
	r.db.Get(&order, "SELECT COALESCE(MAX(order_index), -1) + 1 FROM blocks WHERE plan_id=$1 AND day_number=$2",
		b.PlanID, b.DayNumber)
	query := `INSERT INTO blocks (plan_id, block_type, title, description, location, start_time, day_number, order_index, cost, created_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var id int
	err := r.db.QueryRow(query, b.PlanID, b.Type, b.Title, b.Description, b.Location,
		b.StartTime, b.DayNumber, order, b.Cost, b.CreatedBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать блок: %w", err)
	}
	b.OrderIndex = order
	return id, nil
}

// GetByID возвращает блок по ID.
func (r *BlockRepository) GetByID(id int) (*model.Block, error) {
	var b model.Block
	err := r.db.Get(&b, "SELECT * FROM blocks WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByPlan возвращает блоки плана в порядке (день, позиция).
func (r *BlockRepository) ListByPlan(planID int) ([]model.Block, error) {
	blocks := []model.Block{}
	err := r.db.Select(&blocks,
		"SELECT * FROM blocks WHERE plan_id=$1 ORDER BY day_number, order_index", planID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении блоков плана: %w", err)
	}
	return blocks, nil
}

// Update обновляет содержимое блока (без перемещения).
func (r *BlockRepository) Update(b *model.Block) error {
	_, err := r.db.Exec(
		`UPDATE blocks SET block_type=$1, title=$2, description=$3, location=$4, start_time=$5, cost=$6, updated_at=NOW()
		 WHERE id=$7`,
		b.Type, b.Title, b.Description, b.Location, b.StartTime, b.Cost, b.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить блок: %w", err)
	}
	return nil
}

// Move перемещает блок в указанный день и позицию. Вся проверка прав и
// сдвиг порядковых номеров выполняются функцией БД move_travel_block одной
// транзакцией; после ее завершения пары (day_number, order_index) уникальны.
func (r *BlockRepository) Move(blockID, profileID, dayNumber, orderIndex int) (string, error) {
	var status string
	err := r.db.Get(&status, "SELECT move_travel_block($1, $2, $3, $4)",
		blockID, profileID, dayNumber, orderIndex)
	if err != nil {
		return "", fmt.Errorf("ошибка вызова move_travel_block: %w", err)
	}
	return status, nil
}

// Delete удаляет блок.
func (r *BlockRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM blocks WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить блок: %w", err)
	}
	return nil
}
