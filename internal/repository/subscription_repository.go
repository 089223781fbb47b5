package repository

import (
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"

	"github.com/jmoiron/sqlx"
)

// SubscriptionRepository обеспечивает доступ к привязкам Telegram-чатов
// и подпискам чатов на уведомления по планам.
type SubscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository создает новый репозиторий подписок.
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// LinkChat привязывает Telegram-чат к профилю (повторная привязка заменяет чат).
func (r *SubscriptionRepository) LinkChat(profileID int, chatID int64) error {
	_, err := r.db.Exec(
		`INSERT INTO bot_links (profile_id, chat_id) VALUES ($1, $2)
		 ON CONFLICT (profile_id) DO UPDATE SET chat_id = EXCLUDED.chat_id`,
		profileID, chatID)
	if err != nil {
		return fmt.Errorf("не удалось привязать чат: %w", err)
	}
	return nil
}

// GetLinkByChat возвращает привязку по идентификатору чата.
func (r *SubscriptionRepository) GetLinkByChat(chatID int64) (*model.BotLink, error) {
	var link model.BotLink
	err := r.db.Get(&link, "SELECT * FROM bot_links WHERE chat_id=$1", chatID)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Subscribe подписывает чат на уведомления по плану (если еще не подписан).
func (r *SubscriptionRepository) Subscribe(chatID int64, planID int) error {
	_, err := r.db.Exec(
		"INSERT INTO plan_subscriptions (chat_id, plan_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		chatID, planID)
	if err != nil {
		return fmt.Errorf("не удалось оформить подписку: %w", err)
	}
	return nil
}

// Unsubscribe отменяет подписку чата на план.
func (r *SubscriptionRepository) Unsubscribe(chatID int64, planID int) error {
	_, err := r.db.Exec("DELETE FROM plan_subscriptions WHERE chat_id=$1 AND plan_id=$2", chatID, planID)
	if err != nil {
		return fmt.Errorf("не удалось отменить подписку: %w", err)
	}
	return nil
}

// GetSubscriberChatIDs возвращает ID чатов, подписанных на уведомления плана.
func (r *SubscriptionRepository) GetSubscriberChatIDs(planID int) ([]int64, error) {
	ids := []int64{}
	err := r.db.Select(&ids, "SELECT chat_id FROM plan_subscriptions WHERE plan_id=$1", planID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка подписчиков: %w", err)
	}
	return ids, nil
}
