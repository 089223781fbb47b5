package model

import (
	"testing"
	"time"
)

func TestPlanDays(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"однодневная поездка", start, 1},
		{"неделя", start.AddDate(0, 0, 6), 7},
		{"конец раньше начала", start.AddDate(0, 0, -3), 1},
	}
	for _, tt := range tests {
		p := Plan{StartDate: start, EndDate: tt.end}
		if got := p.Days(); got != tt.want {
			t.Fatalf("%s: Days() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestParticipantCanEdit(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleOwner, true},
		{RoleEditor, true},
		{RoleViewer, false},
	}
	for _, tt := range tests {
		p := Participant{Role: tt.role}
		if got := p.CanEdit(); got != tt.want {
			t.Fatalf("CanEdit(%s) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
