package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// SessionRepository обеспечивает хранение авторизованных сессий.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository создает новый репозиторий сессий.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create сохраняет новую сессию.
func (r *SessionRepository) Create(s *model.Session) error {
	_, err := r.db.Exec(`INSERT INTO sessions (token, profile_id, expires_at) VALUES ($1, $2, $3)`,
		s.Token, s.ProfileID, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("не удалось создать сессию: %w", err)
	}
	return nil
}

// GetByToken возвращает сессию по токену.
func (r *SessionRepository) GetByToken(token string) (*model.Session, error) {
	var s model.Session
	err := r.db.Get(&s, "SELECT * FROM sessions WHERE token=$1", token)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete удаляет сессию (выход пользователя).
func (r *SessionRepository) Delete(token string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE token=$1", token)
	if err != nil {
		return fmt.Errorf("не удалось удалить сессию: %w", err)
	}
	return nil
}

// DeleteExpired удаляет истекшие сессии, возвращает их количество.
func (r *SessionRepository) DeleteExpired() (int64, error) {
	res, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < NOW()")
	if err != nil {
		return 0, fmt.Errorf("не удалось удалить истекшие сессии: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
