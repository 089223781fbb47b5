package service

import (
	"errors"
	"testing"

	"github.com/SeungJin051/trelio-sub001/internal/repository"
)

func TestTranslateMoveStatus(t *testing.T) {
	tests := []struct {
		status string
		want   error
	}{
		{repository.MoveStatusOK, nil},
		{repository.MoveStatusNotFound, ErrNotFound},
		{repository.MoveStatusForbidden, ErrForbidden},
	}
	for _, tt := range tests {
		if got := translateMoveStatus(tt.status); !errors.Is(got, tt.want) {
			t.Fatalf("translateMoveStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestTranslateMoveStatusUnknown(t *testing.T) {
	err := translateMoveStatus("SOMETHING_ELSE")
	if err == nil {
		t.Fatal("неизвестный статус должен давать ошибку")
	}
	// Неизвестный статус - внутренняя ошибка, а не одна из бизнес-ошибок
	for _, known := range []error{ErrNotFound, ErrForbidden, ErrValidation} {
		if errors.Is(err, known) {
			t.Fatalf("неизвестный статус отображен в %v", known)
		}
	}
}
