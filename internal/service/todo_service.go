package service

import (
	"database/sql"
	"strings"

	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/repository"
)

// TodoService содержит бизнес-логику общего списка дел плана.
type TodoService struct {
	todoRepo        *repository.TodoRepository
	participantRepo *repository.ParticipantRepository
	activityRepo    *repository.ActivityRepository
}

// NewTodoService создает новый сервис задач.
func NewTodoService(todoRepo *repository.TodoRepository, participantRepo *repository.ParticipantRepository,
	activityRepo *repository.ActivityRepository) *TodoService {
	return &TodoService{
		todoRepo:        todoRepo,
		participantRepo: participantRepo,
		activityRepo:    activityRepo,
	}
}

// TodoInput - данные создания задачи.
type TodoInput struct {
	PlanID     int    `json:"plan_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
	AssigneeID *int   `json:"assignee_id"`
	Priority   string `json:"priority"`
}

// TodoUpdate - частичное обновление задачи; nil-поля не изменяются.
type TodoUpdate struct {
	Content    *string `json:"content"`
	AssigneeID *int    `json:"assignee_id"`
	Completed  *bool   `json:"completed"`
	Priority   *string `json:"priority"`
}

func validPriority(p string) bool {
	return p == model.PriorityLow || p == model.PriorityMedium || p == model.PriorityHigh
}

// requireEditor проверяет право изменения содержимого плана.
func (s *TodoService) requireEditor(planID, profileID int) error {
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

// requireAssignee проверяет, что исполнитель - участник того же плана.
func (s *TodoService) requireAssignee(planID int, assigneeID *int) error {
	if assigneeID == nil {
		return nil
	}
	if _, err := s.participantRepo.Get(planID, *assigneeID); err != nil {
		if err == sql.ErrNoRows {
			return ErrValidation
		}
		return err
	}
	return nil
}

// Create добавляет задачу в список дел плана.
func (s *TodoService) Create(profileID int, in TodoInput) (*model.Todo, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, ErrValidation
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !validPriority(priority) {
		return nil, ErrValidation
	}
	if err := s.requireEditor(in.PlanID, profileID); err != nil {
		return nil, err
	}
	if err := s.requireAssignee(in.PlanID, in.AssigneeID); err != nil {
		return nil, err
	}
	todo := &model.Todo{
		PlanID:     in.PlanID,
		Content:    in.Content,
		AssigneeID: in.AssigneeID,
		Priority:   priority,
		CreatedBy:  profileID,
	}
	id, err := s.todoRepo.Create(todo)
	if err != nil {
		return nil, err
	}
	todo.ID = id
	// Ошибка журнала не отменяет успешное создание
	s.activityRepo.Append(&model.Activity{
		PlanID: in.PlanID, ProfileID: profileID, Action: model.ActionTodoCreated, Detail: todo.Content,
	})
	return todo, nil
}

// List возвращает задачи плана; доступно любому участнику.
func (s *TodoService) List(planID, profileID int) ([]model.Todo, error) {
	if _, err := s.participantRepo.Get(planID, profileID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.todoRepo.ListByPlan(planID)
}

// Update частично обновляет задачу.
func (s *TodoService) Update(todoID, profileID int, in TodoUpdate) (*model.Todo, error) {
	todo, err := s.todoRepo.GetByID(todoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.requireEditor(todo.PlanID, profileID); err != nil {
		return nil, err
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, ErrValidation
		}
		todo.Content = *in.Content
	}
	if in.AssigneeID != nil {
		if err := s.requireAssignee(todo.PlanID, in.AssigneeID); err != nil {
			return nil, err
		}
		todo.AssigneeID = in.AssigneeID
	}
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}
	if in.Priority != nil {
		if !validPriority(*in.Priority) {
			return nil, ErrValidation
		}
		todo.Priority = *in.Priority
	}
	if err := s.todoRepo.Update(todo); err != nil {
		return nil, err
	}
	s.activityRepo.Append(&model.Activity{
		PlanID: todo.PlanID, ProfileID: profileID, Action: model.ActionTodoUpdated, Detail: todo.Content,
	})
	return todo, nil
}

// Delete удаляет задачу.
func (s *TodoService) Delete(todoID, profileID int) error {
	todo, err := s.todoRepo.GetByID(todoID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if err := s.requireEditor(todo.PlanID, profileID); err != nil {
		return err
	}
	if err := s.todoRepo.Delete(todoID); err != nil {
		return err
	}
	s.activityRepo.Append(&model.Activity{
		PlanID: todo.PlanID, ProfileID: profileID, Action: model.ActionTodoDeleted, Detail: todo.Content,
	})
	return nil
}
