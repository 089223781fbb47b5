package score

// Status описывает качественную интерпретацию оценки для отображения.
type Status struct {
	Message string `json:"message"`
	Color   string `json:"color"`
	Emoji   string `json:"emoji"`
}

// ReadinessStatus возвращает интерпретацию оценки готовности.
// Граница 90 включительно относится к зеленому уровню.
func ReadinessStatus(s int) Status {
	switch {
	case s >= 90:
		return Status{Message: "완벽해요! 여행 준비가 거의 끝났어요", Color: "green", Emoji: "🎉"}
	case s >= 75:
		return Status{Message: "준비가 순조롭게 진행되고 있어요", Color: "blue", Emoji: "✈️"}
	case s >= 50:
		return Status{Message: "절반 정도 준비됐어요", Color: "yellow", Emoji: "📝"}
	case s >= 25:
		return Status{Message: "아직 준비할 게 많아요", Color: "yellow", Emoji: "📌"}
	default:
		return Status{Message: "이제 막 준비를 시작했어요", Color: "red", Emoji: "🧳"}
	}
}

// PlanningStatus возвращает интерпретацию оценки наполненности плана.
func PlanningStatus(s int) Status {
	switch {
	case s >= 90:
		return Status{Message: "완벽한 계획이에요!", Color: "green", Emoji: "🌟"}
	case s >= 70:
		return Status{Message: "계획이 거의 완성됐어요", Color: "blue", Emoji: "🧭"}
	case s >= 30:
		return Status{Message: "계획이 점점 채워지고 있어요", Color: "orange", Emoji: "📋"}
	case s > 0:
		return Status{Message: "계획을 조금씩 채워보세요", Color: "red", Emoji: "✏️"}
	default:
		return Status{Message: "아직 계획이 비어 있어요", Color: "red", Emoji: "🗺️"}
	}
}
