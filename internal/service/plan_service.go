package service

import (
	"database/sql"
	"strings"
	"time"

	"github.com/SeungJin051/trelio-sub001/internal/currency"
	"github.com/SeungJin051/trelio-sub001/internal/model"
	"github.com/SeungJin051/trelio-sub001/internal/realtime"
	"github.com/SeungJin051/trelio-sub001/internal/repository"
	"github.com/SeungJin051/trelio-sub001/internal/score"

	"github.com/google/uuid"
)

// PlanService содержит бизнес-логику, связанную с планами путешествий.
type PlanService struct {
	planRepo        *repository.PlanRepository
	participantRepo *repository.ParticipantRepository
	blockRepo       *repository.BlockRepository
	todoRepo        *repository.TodoRepository
	activityRepo    *repository.ActivityRepository
	hub             *realtime.Hub
}

// NewPlanService создает новый сервис планов.
func NewPlanService(planRepo *repository.PlanRepository, participantRepo *repository.ParticipantRepository,
	blockRepo *repository.BlockRepository, todoRepo *repository.TodoRepository,
	activityRepo *repository.ActivityRepository, hub *realtime.Hub) *PlanService {
	return &PlanService{
		planRepo:        planRepo,
		participantRepo: participantRepo,
		blockRepo:       blockRepo,
		todoRepo:        todoRepo,
		activityRepo:    activityRepo,
		hub:             hub,
	}
}

// PlanInput - данные создания/обновления плана.
type PlanInput struct {
	Title             string    `json:"title" binding:"required"`
	Location          string    `json:"location" binding:"required"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	EndDate           time.Time `json:"end_date" binding:"required"`
	TargetBudget      int64     `json:"target_budget"`
	BudgetCurrency    string    `json:"budget_currency"`
	DefaultPermission string    `json:"default_permission"`
	ShareClosed       *bool     `json:"share_closed"`
}

// validate проверяет поля плана; граница дат и роль по умолчанию.
func (in *PlanInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Location) == "" {
		return ErrValidation
	}
	if in.EndDate.Before(in.StartDate) {
		return ErrValidation
	}
	switch in.DefaultPermission {
	case "", model.PermissionEditor, model.PermissionViewer:
	default:
		return ErrValidation
	}
	return nil
}

// Create создает план: владелец становится участником, ссылка-приглашение
// генерируется сразу.
func (s *PlanService) Create(ownerID int, in PlanInput) (*model.Plan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	perm := in.DefaultPermission
	if perm == "" {
		perm = model.PermissionViewer
	}
	cur := in.BudgetCurrency
	if cur == "" {
		cur = "KRW"
	}
	plan := &model.Plan{
		Title:             in.Title,
		Location:          in.Location,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		OwnerID:           ownerID,
		TargetBudget:      in.TargetBudget,
		BudgetCurrency:    cur,
		ShareID:           uuid.NewString(),
		DefaultPermission: perm,
	}
	if in.ShareClosed != nil {
		plan.ShareClosed = *in.ShareClosed
	}
	id, err := s.planRepo.Create(plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id
	return plan, nil
}

// Get возвращает план; доступен только участникам.
func (s *PlanService) Get(planID, profileID int) (*model.Plan, error) {
	if _, err := s.Participant(planID, profileID); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return plan, nil
}

// List возвращает планы пользователя.
func (s *PlanService) List(profileID int) ([]model.Plan, error) {
	return s.planRepo.ListByProfile(profileID)
}

// Update обновляет план; разрешено владельцу и редакторам,
// смена прав доступа по ссылке - только владельцу.
func (s *PlanService) Update(planID, profileID int, in PlanInput) (*model.Plan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	participant, err := s.Participant(planID, profileID)
	if err != nil {
		return nil, err
	}
	if !participant.CanEdit() {
		return nil, ErrForbidden
	}
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := applyPlanUpdate(plan, participant.Role, in); err != nil {
		return nil, err
	}
	if err := s.planRepo.Update(plan); err != nil {
		return nil, err
	}
	// Запись в журнал не критична: ошибку игнорируем осознанно
	s.activityRepo.Append(&model.Activity{
		PlanID: planID, ProfileID: profileID, Action: model.ActionPlanUpdated, Detail: plan.Title,
	})
	return plan, nil
}

// applyPlanUpdate применяет входные данные к плану. Настройки доступа по
// ссылке (share_closed, default_permission) меняет только владелец;
// пропущенные во входе настройки остаются прежними, закрытая ссылка
// не открывается заново обычным обновлением полей плана.
func applyPlanUpdate(plan *model.Plan, role string, in PlanInput) error {
	if role != model.RoleOwner {
		if in.DefaultPermission != "" && in.DefaultPermission != plan.DefaultPermission {
			return ErrForbidden
		}
		if in.ShareClosed != nil && *in.ShareClosed != plan.ShareClosed {
			return ErrForbidden
		}
	}
	plan.Title = in.Title
	plan.Location = in.Location
	plan.StartDate = in.StartDate
	plan.EndDate = in.EndDate
	plan.TargetBudget = in.TargetBudget
	if in.BudgetCurrency != "" {
		plan.BudgetCurrency = in.BudgetCurrency
	}
	if in.DefaultPermission != "" {
		plan.DefaultPermission = in.DefaultPermission
	}
	if in.ShareClosed != nil {
		plan.ShareClosed = *in.ShareClosed
	}
	return nil
}

// Delete удаляет план. Разрешено только владельцу.
func (s *PlanService) Delete(planID, profileID int) error {
	participant, err := s.Participant(planID, profileID)
	if err != nil {
		return err
	}
	if participant.Role != model.RoleOwner {
		return ErrForbidden
	}
	return s.planRepo.Delete(planID)
}

// Participant возвращает участие пользователя в плане или ErrForbidden.
func (s *PlanService) Participant(planID, profileID int) (*model.Participant, error) {
	participant, err := s.participantRepo.Get(planID, profileID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return participant, nil
}

// Participants возвращает участников плана с проставленными флагами
// присутствия из текущего снимка шины.
func (s *PlanService) Participants(planID, profileID int) ([]model.ParticipantInfo, error) {
	if _, err := s.Participant(planID, profileID); err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.ListByPlan(planID)
	if err != nil {
		return nil, err
	}
	return realtime.MergeOnline(participants, s.hub.Snapshot(planID)), nil
}

// ChangeRole изменяет роль участника. Разрешено только владельцу;
// роль владельца изменить нельзя (у плана всегда ровно один владелец).
func (s *PlanService) ChangeRole(planID, ownerID, targetID int, role string) error {
	if role != model.RoleEditor && role != model.RoleViewer {
		return ErrValidation
	}
	owner, err := s.Participant(planID, ownerID)
	if err != nil {
		return err
	}
	if owner.Role != model.RoleOwner {
		return ErrForbidden
	}
	target, err := s.participantRepo.Get(planID, targetID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if target.Role == model.RoleOwner {
		return ErrForbidden
	}
	if err := s.participantRepo.UpdateRole(planID, targetID, role); err != nil {
		return err
	}
	s.activityRepo.Append(&model.Activity{
		PlanID: planID, ProfileID: ownerID, Action: model.ActionRoleChanged, Detail: role,
	})
	return nil
}

// Summary - сводка оценок плана для панели прогресса.
type Summary struct {
	PlanningScore   int          `json:"planning_score"`
	PlanningStatus  score.Status `json:"planning_status"`
	ReadinessScore  int          `json:"readiness_score"`
	ReadinessStatus score.Status `json:"readiness_status"`
	Days            int          `json:"days"`
	BlocksCount     int          `json:"blocks_count"`
	TodosCount      int          `json:"todos_count"`
	Budget          string       `json:"budget,omitempty"`
}

// budgetLabel возвращает бюджет плана в виде строки с символом валюты,
// пустая строка - бюджет не задан.
func budgetLabel(plan *model.Plan) string {
	if plan.TargetBudget <= 0 {
		return ""
	}
	return currency.Format(plan.TargetBudget, plan.BudgetCurrency)
}

// Summarize считает оценки наполненности и готовности плана.
func (s *PlanService) Summarize(planID, profileID int) (*Summary, error) {
	plan, err := s.Get(planID, profileID)
	if err != nil {
		return nil, err
	}
	blocks, err := s.blockRepo.ListByPlan(planID)
	if err != nil {
		return nil, err
	}
	todos, err := s.todoRepo.ListByPlan(planID)
	if err != nil {
		return nil, err
	}

	scoreBlocks := make([]score.Block, len(blocks))
	for i, b := range blocks {
		scoreBlocks[i] = score.Block{
			Type:        b.Type,
			Title:       b.Title,
			Time:        b.StartTime,
			Location:    b.Location,
			Description: b.Description,
		}
	}
	scoreTodos := make([]score.Todo, len(todos))
	for i, t := range todos {
		scoreTodos[i] = score.Todo{Completed: t.Completed}
	}

	days := plan.Days()
	planning := score.CalculatePlanningScore(len(blocks), len(todos), days)
	readiness := score.CalculateReadinessScore(scoreBlocks, scoreTodos, days)
	return &Summary{
		PlanningScore:   planning,
		PlanningStatus:  score.PlanningStatus(planning),
		ReadinessScore:  readiness,
		ReadinessStatus: score.ReadinessStatus(readiness),
		Days:            days,
		BlocksCount:     len(blocks),
		TodosCount:      len(todos),
		Budget:          budgetLabel(plan),
	}, nil
}
