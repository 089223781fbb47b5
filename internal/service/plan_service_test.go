package service

import (
	"errors"
	"testing"
	"time"

	"github.com/SeungJin051/trelio-sub001/internal/model"
)

func closedPlan() *model.Plan {
	return &model.Plan{
		ID:                1,
		Title:             "Токио",
		Location:          "Япония",
		StartDate:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		DefaultPermission: model.PermissionViewer,
		ShareClosed:       true,
	}
}

func TestApplyPlanUpdateKeepsShareClosed(t *testing.T) {
	// Обновление без share_closed не должно заново открывать закрытую ссылку
	plan := closedPlan()
	in := PlanInput{
		Title:     "Токио и Осака",
		Location:  plan.Location,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
	}
	if err := applyPlanUpdate(plan, model.RoleOwner, in); err != nil {
		t.Fatalf("applyPlanUpdate: %v", err)
	}
	if !plan.ShareClosed {
		t.Fatal("закрытая ссылка открылась при обновлении без share_closed")
	}
	if plan.Title != "Токио и Осака" {
		t.Fatalf("Title = %q", plan.Title)
	}
}

func TestApplyPlanUpdateEditorWithClosedLink(t *testing.T) {
	// Редактор меняет поля плана, не трогая настройки доступа
	plan := closedPlan()
	in := PlanInput{
		Title:     "Новое название",
		Location:  plan.Location,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
	}
	if err := applyPlanUpdate(plan, model.RoleEditor, in); err != nil {
		t.Fatalf("редактор не смог обновить план с закрытой ссылкой: %v", err)
	}
	if !plan.ShareClosed {
		t.Fatal("редактор изменил share_closed")
	}
}

func TestApplyPlanUpdateEditorCannotTouchShare(t *testing.T) {
	open := false
	plan := closedPlan()
	in := PlanInput{
		Title:       plan.Title,
		Location:    plan.Location,
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		ShareClosed: &open,
	}
	if err := applyPlanUpdate(plan, model.RoleEditor, in); !errors.Is(err, ErrForbidden) {
		t.Fatalf("applyPlanUpdate = %v, want ErrForbidden", err)
	}

	in.ShareClosed = nil
	in.DefaultPermission = model.PermissionEditor
	if err := applyPlanUpdate(plan, model.RoleEditor, in); !errors.Is(err, ErrForbidden) {
		t.Fatalf("смена default_permission редактором = %v, want ErrForbidden", err)
	}
}

func TestApplyPlanUpdateOwnerTogglesShare(t *testing.T) {
	open := false
	plan := closedPlan()
	in := PlanInput{
		Title:       plan.Title,
		Location:    plan.Location,
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		ShareClosed: &open,
	}
	if err := applyPlanUpdate(plan, model.RoleOwner, in); err != nil {
		t.Fatalf("applyPlanUpdate: %v", err)
	}
	if plan.ShareClosed {
		t.Fatal("владелец не смог открыть ссылку")
	}
}

func TestBudgetLabel(t *testing.T) {
	tests := []struct {
		budget int64
		code   string
		want   string
	}{
		{1500000, "KRW", "₩1,500,000"},
		{2000, "USD", "$2,000"},
		{0, "KRW", ""},
		{-5, "KRW", ""},
	}
	for _, tt := range tests {
		plan := &model.Plan{TargetBudget: tt.budget, BudgetCurrency: tt.code}
		if got := budgetLabel(plan); got != tt.want {
			t.Fatalf("budgetLabel(%d, %q) = %q, want %q", tt.budget, tt.code, got, tt.want)
		}
	}
}
