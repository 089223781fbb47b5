package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Статусы, возвращаемые функцией accept_plan_invite.
const (
	AcceptStatusNotFound           = "NOT_FOUND"
	AcceptStatusAlreadyParticipant = "ALREADY_PARTICIPANT"
	AcceptStatusLimitExceeded      = "LIMIT_EXCEEDED"
	AcceptStatusClosed             = "CLOSED"
)

// InviteRepository выполняет присоединение к плану по ссылке-приглашению.
// Вся проверка инвариантов (лимит участия, идемпотентность вступления,
// закрытая ссылка) живет в функции БД accept_plan_invite.
type InviteRepository struct {
	db *sqlx.DB
}

// NewInviteRepository создает новый репозиторий приглашений.
func NewInviteRepository(db *sqlx.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Accept вызывает транзакционную функцию присоединения. При успехе возвращает
// ID плана; иначе - статус отказа из числа AcceptStatus*.
func (r *InviteRepository) Accept(shareID string, profileID int) (planID int, status string, err error) {
	var result string
	err = r.db.Get(&result, "SELECT accept_plan_invite($1, $2)", shareID, profileID)
	if err != nil {
		return 0, "", fmt.Errorf("ошибка вызова accept_plan_invite: %w", err)
	}
	// Успех кодируется как "OK:<plan_id>".
	if rest, ok := strings.CutPrefix(result, "OK:"); ok {
		id, convErr := strconv.Atoi(rest)
		if convErr != nil {
			return 0, "", fmt.Errorf("некорректный ответ accept_plan_invite %q: %w", result, convErr)
		}
		return id, "", nil
	}
	return 0, result, nil
}
