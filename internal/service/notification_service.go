package service

import (
	"database/sql"
	"strings"

	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/repository"

	"github.com/google/uuid"
)

// NotificationService содержит логику привязки Telegram-чатов к профилям
// и подписок на уведомления по планам.
type NotificationService struct {
	profileRepo     *repository.ProfileRepository
	subRepo         *repository.SubscriptionRepository
	participantRepo *repository.ParticipantRepository
	planRepo        *repository.PlanRepository
}

// NewNotificationService создает новый сервис уведомлений.
func NewNotificationService(profileRepo *repository.ProfileRepository, subRepo *repository.SubscriptionRepository,
	participantRepo *repository.ParticipantRepository, planRepo *repository.PlanRepository) *NotificationService {
	return &NotificationService{
		profileRepo:     profileRepo,
		subRepo:         subRepo,
		participantRepo: participantRepo,
		planRepo:        planRepo,
	}
}

// IssueLinkCode выдает одноразовый код привязки Telegram-чата.
// Код показывается пользователю в приложении, бот принимает его командой /link.
func (s *NotificationService) IssueLinkCode(profileID int) (string, error) {
	// Короткий код из первого сегмента UUID - достаточно для одноразовой привязки
	code := strings.Split(uuid.NewString(), "-")[0]
	if err := s.profileRepo.UpdateLinkCode(profileID, code); err != nil {
		return "", err
	}
	return code, nil
}

// LinkChat привязывает чат по коду, сбрасывая использованный код.
// Возвращает профиль привязанного пользователя.
func (s *NotificationService) LinkChat(code string, chatID int64) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByLinkCode(code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.subRepo.LinkChat(profile.ID, chatID); err != nil {
		return nil, err
	}
	if err := s.profileRepo.ClearLinkCode(profile.ID); err != nil {
		return nil, err
	}
	return profile, nil
}

// PlansForChat возвращает планы пользователя, чей профиль привязан к чату.
func (s *NotificationService) PlansForChat(chatID int64) ([]model.Plan, error) {
	link, err := s.subRepo.GetLinkByChat(chatID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.planRepo.ListByProfile(link.ProfileID)
}

// Subscribe подписывает чат на уведомления по плану. Чат должен быть привязан,
// а его владелец - состоять в плане.
func (s *NotificationService) Subscribe(chatID int64, planID int) error {
	link, err := s.subRepo.GetLinkByChat(chatID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.participantRepo.Get(planID, link.ProfileID); err != nil {
		if err == sql.ErrNoRows {
			return ErrForbidden
		}
		return err
	}
	return s.subRepo.Subscribe(chatID, planID)
}

// Unsubscribe отменяет подписку чата на план.
func (s *NotificationService) Unsubscribe(chatID int64, planID int) error {
	return s.subRepo.Unsubscribe(chatID, planID)
}

// SubscriberChats возвращает чаты, подписанные на уведомления плана.
func (s *NotificationService) SubscriberChats(planID int) ([]int64, error) {
	return s.subRepo.GetSubscriberChatIDs(planID)
}
