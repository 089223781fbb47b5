package score

import "testing"

func TestReadinessStatusBoundaries(t *testing.T) {
	tests := []struct {
		score int
		color string
	}{
		{100, "green"},
		{90, "green"}, // граница 90 включительно - зеленый
		{89, "blue"},
		{75, "blue"},
		{74, "yellow"},
		{50, "yellow"},
		{49, "yellow"},
		{25, "yellow"},
		{24, "red"},
		{0, "red"},
	}
	for _, tt := range tests {
		st := ReadinessStatus(tt.score)
		if st.Color != tt.color {
			t.Fatalf("ReadinessStatus(%d).Color = %q, want %q", tt.score, st.Color, tt.color)
		}
		if st.Message == "" || st.Emoji == "" {
			t.Fatalf("ReadinessStatus(%d): пустое сообщение или эмодзи", tt.score)
		}
	}
}

func TestPlanningStatusBoundaries(t *testing.T) {
	tests := []struct {
		score int
		color string
	}{
		{0, "red"},
		{1, "red"},
		{29, "red"},
		{30, "orange"},
		{69, "orange"},
		{70, "blue"},
		{89, "blue"},
		{90, "green"},
		{100, "green"},
	}
	for _, tt := range tests {
		st := PlanningStatus(tt.score)
		if st.Color != tt.color {
			t.Fatalf("PlanningStatus(%d).Color = %q, want %q", tt.score, st.Color, tt.color)
		}
	}
}

func TestPlanningStatusZeroHasOwnMessage(t *testing.T) {
	if PlanningStatus(0).Message == PlanningStatus(10).Message {
		t.Fatal("пустой план должен иметь отдельное сообщение")
	}
}
