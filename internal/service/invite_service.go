package service

import (
	"database/sql"
	"fmt"

	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/repository"
)

// InviteService выполняет проверку и принятие приглашений по ссылке.
// Бизнес-логики здесь нет: инварианты вступления обеспечивает функция БД,
// сервис лишь переводит ее статусы в ошибки уровня приложения.
type InviteService struct {
	planRepo     *repository.PlanRepository
	inviteRepo   *repository.InviteRepository
	activityRepo *repository.ActivityRepository
}

// NewInviteService создает новый сервис приглашений.
func NewInviteService(planRepo *repository.PlanRepository, inviteRepo *repository.InviteRepository,
	activityRepo *repository.ActivityRepository) *InviteService {
	return &InviteService{
		planRepo:     planRepo,
		inviteRepo:   inviteRepo,
		activityRepo: activityRepo,
	}
}

// InvitePreview - данные плана, показываемые до принятия приглашения.
type InvitePreview struct {
	PlanID   int    `json:"plan_id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// Verify возвращает краткие сведения о плане по ссылке-приглашению.
func (s *InviteService) Verify(shareID string) (*InvitePreview, error) {
	plan, err := s.planRepo.GetByShareID(shareID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &InvitePreview{PlanID: plan.ID, Title: plan.Title, Location: plan.Location}, nil
}

// Accept присоединяет пользователя к плану по ссылке. Возвращает ID плана.
func (s *InviteService) Accept(shareID string, profileID int) (int, error) {
	planID, status, err := s.inviteRepo.Accept(shareID, profileID)
	if err != nil {
		return 0, err
	}
	if status != "" {
		return 0, translateAcceptStatus(status)
	}
	// Провал записи в журнал не отменяет состоявшееся вступление
	s.activityRepo.Append(&model.Activity{
		PlanID: planID, ProfileID: profileID, Action: model.ActionMemberJoined,
	})
	return planID, nil
}

// translateAcceptStatus переводит статус функции БД в ошибку приложения.
func translateAcceptStatus(status string) error {
	switch status {
	case repository.AcceptStatusNotFound:
		return ErrNotFound
	case repository.AcceptStatusAlreadyParticipant:
		return ErrAlreadyParticipant
	case repository.AcceptStatusLimitExceeded:
		return ErrLimitExceeded
	case repository.AcceptStatusClosed:
		return ErrLinkClosed
	default:
		return fmt.Errorf("неизвестный статус accept_plan_invite: %q", status)
	}
}
