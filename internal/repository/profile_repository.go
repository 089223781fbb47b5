package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// ProfileRepository обеспечивает доступ к данным профилей пользователей.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository создает новый репозиторий профилей.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create добавляет новый профиль. Возвращает ID созданного профиля.
func (r *ProfileRepository) Create(p *model.Profile) (int, error) {
	query := `INSERT INTO profiles (email, nickname, avatar_url) VALUES ($1, $2, $3) RETURNING id`
	var id int
	err := r.db.QueryRow(query, p.Email, p.Nickname, p.AvatarURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать профиль: %w", err)
	}
	return id, nil
}

// GetByID возвращает профиль по внутреннему идентификатору.
func (r *ProfileRepository) GetByID(id int) (*model.Profile, error) {
	var p model.Profile
	err := r.db.Get(&p, "SELECT * FROM profiles WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByEmail ищет профиль по email. Возвращает sql.ErrNoRows, если не найден.
func (r *ProfileRepository) GetByEmail(email string) (*model.Profile, error) {
	var p model.Profile
	err := r.db.Get(&p, "SELECT * FROM profiles WHERE email=$1", email)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateLinkCode сохраняет одноразовый код привязки Telegram-чата.
func (r *ProfileRepository) UpdateLinkCode(id int, code string) error {
	_, err := r.db.Exec("UPDATE profiles SET link_code=$1 WHERE id=$2", code, id)
	if err != nil {
		return fmt.Errorf("не удалось сохранить код привязки: %w", err)
	}
	return nil
}

// GetByLinkCode ищет профиль по коду привязки.
func (r *ProfileRepository) GetByLinkCode(code string) (*model.Profile, error) {
	var p model.Profile
	err := r.db.Get(&p, "SELECT * FROM profiles WHERE link_code=$1", code)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ClearLinkCode сбрасывает использованный код привязки.
func (r *ProfileRepository) ClearLinkCode(id int) error {
	_, err := r.db.Exec("UPDATE profiles SET link_code=NULL WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось сбросить код привязки: %w", err)
	}
	return nil
}
