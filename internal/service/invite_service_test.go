package service

import (
	"errors"
	"testing"

	"github.com/SeungJin051/trelio-sub001/internal/repository"
)

func TestTranslateAcceptStatus(t *testing.T) {
	tests := []struct {
		status string
		want   error
	}{
		{repository.AcceptStatusNotFound, ErrNotFound},
		{repository.AcceptStatusAlreadyParticipant, ErrAlreadyParticipant},
		{repository.AcceptStatusLimitExceeded, ErrLimitExceeded},
		{repository.AcceptStatusClosed, ErrLinkClosed},
	}
	for _, tt := range tests {
		if got := translateAcceptStatus(tt.status); !errors.Is(got, tt.want) {
			t.Fatalf("translateAcceptStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestTranslateAcceptStatusUnknown(t *testing.T) {
	err := translateAcceptStatus("SOMETHING_ELSE")
	if err == nil {
		t.Fatal("неизвестный статус должен давать ошибку")
	}
	// Неизвестный статус - внутренняя ошибка, а не одна из бизнес-ошибок
	for _, known := range []error{ErrNotFound, ErrAlreadyParticipant, ErrLimitExceeded, ErrLinkClosed} {
		if errors.Is(err, known) {
			t.Fatalf("неизвестный статус отображен в %v", known)
		}
	}
}
