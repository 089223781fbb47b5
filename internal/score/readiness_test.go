package score

import "testing"

func completeBlock(blockType string) Block {
	return Block{
		Type:        blockType,
		Title:       "체크인",
		Time:        "14:00",
		Location:    "서울",
		Description: "상세 정보",
	}
}

func TestIsBlockCompleteRequiresBaseFields(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  bool
	}{
		{"все поля", completeBlock("hotel"), true},
		{"без названия", Block{Type: "hotel", Time: "14:00", Location: "서울"}, false},
		{"без времени", Block{Type: "hotel", Title: "체크인", Location: "서울"}, false},
		{"без места", Block{Type: "hotel", Title: "체크인", Time: "14:00"}, false},
		{"пробельное название", Block{Type: "hotel", Title: "   ", Time: "14:00", Location: "서울"}, false},
	}
	for _, tt := range tests {
		if got := IsBlockComplete(tt.block); got != tt.want {
			t.Fatalf("%s: IsBlockComplete = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsBlockCompleteFlightNeedsDescription(t *testing.T) {
	flight := completeBlock("flight")
	flight.Description = ""
	if IsBlockComplete(flight) {
		t.Fatal("перелет без описания не должен считаться заполненным")
	}
	flight.Description = "KE123"
	if !IsBlockComplete(flight) {
		t.Fatal("перелет с описанием должен считаться заполненным")
	}

	transport := completeBlock("transportation")
	transport.Description = " "
	if IsBlockComplete(transport) {
		t.Fatal("транспорт с пробельным описанием не должен считаться заполненным")
	}
}

func TestReadinessNoTodosNeutralDefault(t *testing.T) {
	// Без блоков и задач: блоки дают 0, задачи - нейтральные 50,
	// итого round(0*0.6 + 50*0.4) = 20
	if s := CalculateReadinessScore(nil, nil, 5); s != 20 {
		t.Fatalf("score = %d, want 20", s)
	}
}

func TestReadinessFullPreparation(t *testing.T) {
	// 2 дня: цель 5 заполненных блоков; все задачи выполнены
	blocks := make([]Block, 5)
	for i := range blocks {
		blocks[i] = completeBlock("activity")
	}
	todos := []Todo{{Completed: true}, {Completed: true}}
	if s := CalculateReadinessScore(blocks, todos, 2); s != 100 {
		t.Fatalf("score = %d, want 100", s)
	}
}

func TestReadinessIncompleteBlocksIgnored(t *testing.T) {
	incomplete := Block{Type: "memo", Title: "메모"}
	blocks := []Block{completeBlock("activity"), incomplete}
	withIncomplete := CalculateReadinessScore(blocks, nil, 2)
	withoutIncomplete := CalculateReadinessScore(blocks[:1], nil, 2)
	if withIncomplete != withoutIncomplete {
		t.Fatalf("незаполненный блок повлиял на оценку: %d != %d", withIncomplete, withoutIncomplete)
	}
}

func TestReadinessStaysInRange(t *testing.T) {
	many := make([]Block, 100)
	for i := range many {
		many[i] = completeBlock("activity")
	}
	for _, days := range []int{-3, 0, 1, 5, 30} {
		s := CalculateReadinessScore(many, []Todo{{Completed: true}}, days)
		if s < 0 || s > 100 {
			t.Fatalf("days=%d: score = %d, вне [0,100]", days, s)
		}
	}
}
