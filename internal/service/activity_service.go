package service

import (
	"database/sql"

	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/repository"
)

// Максимум записей журнала, отдаваемых за один запрос.
const activityListLimit = 50

// ActivityService предоставляет чтение журнала действий плана.
type ActivityService struct {
	activityRepo    *repository.ActivityRepository
	participantRepo *repository.ParticipantRepository
}

// NewActivityService создает новый сервис журнала действий.
func NewActivityService(activityRepo *repository.ActivityRepository,
	participantRepo *repository.ParticipantRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo, participantRepo: participantRepo}
}

// List возвращает последние записи журнала плана; доступно любому участнику.
func (s *ActivityService) List(planID, profileID int) ([]model.Activity, error) {
	if _, err := s.participantRepo.Get(planID, profileID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.activityRepo.ListByPlan(planID, activityListLimit)
}
