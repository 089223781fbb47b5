package model

import "time"

// Типы блоков расписания.
const (
	BlockFlight         = "flight"
	BlockHotel          = "hotel"
	BlockActivity       = "activity"
	BlockMeal           = "meal"
	BlockTransportation = "transportation"
	BlockMemo           = "memo"
)

// Block представляет один пункт расписания (перелет, отель, активность и т.д.)
// внутри конкретного дня плана.
type Block struct {
	ID          int       `db:"id" json:"id"`
	PlanID      int       `db:"plan_id" json:"plan_id"`
	Type        string    `db:"block_type" json:"block_type"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Location    string    `db:"location" json:"location"`
	StartTime   string    `db:"start_time" json:"start_time"` // время в формате "HH:MM", пустая строка если не задано
	DayNumber   int       `db:"day_number" json:"day_number"` // номер дня плана, начиная с 1
	OrderIndex  int       `db:"order_index" json:"order_index"`
	Cost        *int64    `db:"cost" json:"cost"`
	CreatedBy   int       `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// IsKnownBlockType проверяет, что тип блока входит в список поддерживаемых.
func IsKnownBlockType(t string) bool {
	switch t {
	case BlockFlight, BlockHotel, BlockActivity, BlockMeal, BlockTransportation, BlockMemo:
		return true
	}
	return false
}
