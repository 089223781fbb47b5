package score

import "testing"

func TestPlanningScoreStaysInRange(t *testing.T) {
	for days := 1; days <= 14; days++ {
		for blocks := 0; blocks <= 40; blocks++ {
			for todos := 0; todos <= 15; todos++ {
				s := CalculatePlanningScore(blocks, todos, days)
				if s < 0 || s > 100 {
					t.Fatalf("score(blocks=%d, todos=%d, days=%d) = %d, вне [0,100]", blocks, todos, days, s)
				}
			}
		}
	}
}

func TestPlanningScoreMonotonicInBlocks(t *testing.T) {
	prev := -1
	for blocks := 0; blocks <= 40; blocks++ {
		s := CalculatePlanningScore(blocks, 3, 5)
		if s < prev {
			t.Fatalf("score упал с %d до %d при blocks=%d", prev, s, blocks)
		}
		prev = s
	}
}

func TestPlanningScoreEmptyPlan(t *testing.T) {
	if s := CalculatePlanningScore(0, 0, 5); s != 0 {
		t.Fatalf("пустой план: score = %d, want 0", s)
	}
}

func TestPlanningScoreFullPlan(t *testing.T) {
	// 5 дней: цель блоков 11, цель задач 4 - при достижении обеих целей 100
	if s := CalculatePlanningScore(11, 4, 5); s != 100 {
		t.Fatalf("полный план: score = %d, want 100", s)
	}
}

func TestPlanningScoreDefensiveInputs(t *testing.T) {
	for _, days := range []int{0, -1, -100} {
		s := CalculatePlanningScore(3, 1, days)
		if s < 0 || s > 100 {
			t.Fatalf("days=%d: score = %d, вне [0,100]", days, s)
		}
		// Отрицательные дни приводятся к одному дню
		if want := CalculatePlanningScore(3, 1, 1); s != want {
			t.Fatalf("days=%d: score = %d, want %d (как для одного дня)", days, s, want)
		}
	}
	if s := CalculatePlanningScore(-5, -5, 3); s != 0 {
		t.Fatalf("отрицательные счетчики: score = %d, want 0", s)
	}
}
