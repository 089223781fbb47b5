package service

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/repository"
)

// BlockService содержит бизнес-логику, связанную с блоками расписания.
type BlockService struct {
	blockRepo       *repository.BlockRepository
	participantRepo *repository.ParticipantRepository
	activityRepo    *repository.ActivityRepository
}

// NewBlockService создает новый сервис блоков.
func NewBlockService(blockRepo *repository.BlockRepository, participantRepo *repository.ParticipantRepository,
	activityRepo *repository.ActivityRepository) *BlockService {
	return &BlockService{
		blockRepo:       blockRepo,
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
	}
}

// BlockInput - данные создания/обновления блока.
type BlockInput struct {
	PlanID      int    `json:"plan_id" binding:"required"`
	Type        string `json:"block_type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartTime   string `json:"start_time"`
	DayNumber   int    `json:"day_number" binding:"required"`
	Cost        *int64 `json:"cost"`
}

// requireEditor проверяет, что пользователь может изменять содержимое плана.
func (s *BlockService) requireEditor(planID, profileID int) error {
	participant, err := s.participantRepo.Get(planID, profileID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrForbidden
		}
		return err
	}
	if !participant.CanEdit() {
		return ErrForbidden
	}
	return nil
}

// Create добавляет блок в конец указанного дня плана.
func (s *BlockService) Create(profileID int, in BlockInput) (*model.Block, error) {
	if strings.TrimSpace(in.Title) == "" || !model.IsKnownBlockType(in.Type) || in.DayNumber < 1 {
		return nil, ErrValidation
	}
	if err := s.requireEditor(in.PlanID, profileID); err != nil {
		return nil, err
	}
	block := &model.Block{
		PlanID:      in.PlanID,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartTime:   in.StartTime,
		DayNumber:   in.DayNumber,
		Cost:        in.Cost,
		CreatedBy:   profileID,
	}
	id, err := s.blockRepo.Create(block)
	if err != nil {
		return nil, err
	}
	block.ID = id
	// Журнал ведется по принципу "лучшее усилие": провал записи после
	// успешного создания блока осознанно игнорируется
	s.activityRepo.Append(&model.Activity{
		PlanID: in.PlanID, ProfileID: profileID, Action: model.ActionBlockCreated, Detail: block.Title,
	})
	return block, nil
}

// List возвращает блоки плана; доступно любому участнику.
func (s *BlockService) List(planID, profileID int) ([]model.Block, error) {
	if _, err := s.participantRepo.Get(planID, profileID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.blockRepo.ListByPlan(planID)
}

// Update обновляет содержимое блока.
func (s *BlockService) Update(blockID, profileID int, in BlockInput) (*model.Block, error) {
	block, err := s.blockRepo.GetByID(blockID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.requireEditor(block.PlanID, profileID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" || !model.IsKnownBlockType(in.Type) {
		return nil, ErrValidation
	}
	block.Type = in.Type
	block.Title = in.Title
	block.Description = in.Description
	block.Location = in.Location
	block.StartTime = in.StartTime
	block.Cost = in.Cost
	if err := s.blockRepo.Update(block); err != nil {
		return nil, err
	}
	s.activityRepo.Append(&model.Activity{
		PlanID: block.PlanID, ProfileID: profileID, Action: model.ActionBlockUpdated, Detail: block.Title,
	})
	return block, nil
}

// translateMoveStatus переводит статус функции БД move_travel_block
// в ошибку сервиса.
func translateMoveStatus(status string) error {
	switch status {
	case repository.MoveStatusOK:
		return nil
	case repository.MoveStatusNotFound:
		return ErrNotFound
	case repository.MoveStatusForbidden:
		return ErrForbidden
	default:
		return fmt.Errorf("неизвестный статус move_travel_block: %q", status)
	}
}

// Move перемещает блок в новый день и позицию. Проверка существования, прав
// и перестановка порядковых номеров целиком делегированы функции БД; здесь
// только перевод статуса и запись в журнал.
func (s *BlockService) Move(blockID, profileID, dayNumber, orderIndex int) error {
	if dayNumber < 1 || orderIndex < 0 {
		return ErrValidation
	}
	status, err := s.blockRepo.Move(blockID, profileID, dayNumber, orderIndex)
	if err != nil {
		return err
	}
	if err := translateMoveStatus(status); err != nil {
		return err
	}

	block, err := s.blockRepo.GetByID(blockID)
	if err != nil {
		// Перемещение уже состоялось, журнал вторичен
		log.Printf("Не удалось прочитать блок %d после перемещения: %v", blockID, err)
		return nil
	}
	s.activityRepo.Append(&model.Activity{
		PlanID: block.PlanID, ProfileID: profileID, Action: model.ActionBlockMoved, Detail: block.Title,
	})
	return nil
}

// Delete удаляет блок.
func (s *BlockService) Delete(blockID, profileID int) error {
	block, err := s.blockRepo.GetByID(blockID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if err := s.requireEditor(block.PlanID, profileID); err != nil {
		return err
	}
	if err := s.blockRepo.Delete(blockID); err != nil {
		return err
	}
	s.activityRepo.Append(&model.Activity{
		PlanID: block.PlanID, ProfileID: profileID, Action: model.ActionBlockDeleted, Detail: block.Title,
	})
	return nil
}
