package score

import (
	"math"
	"strings"
)

// Целевая плотность заполненных блоков на день для оценки готовности.
const completeBlocksPerDay = 2.5

// Оценка задач при полном отсутствии задач - нейтральные 50 баллов.
const neutralTodoScore = 50.0

// Типы блоков, для которых обязательно заполненное описание
// (номер рейса, детали маршрута и т.п.).
var requireDescription = map[string]bool{
	"flight":         true,
	"transportation": true,
}

// IsBlockComplete проверяет, заполнен ли блок: нужны непустые название,
// время и место, а для перелетов и транспорта - еще и описание.
func IsBlockComplete(b Block) bool {
	if strings.TrimSpace(b.Title) == "" ||
		strings.TrimSpace(b.Time) == "" ||
		strings.TrimSpace(b.Location) == "" {
		return false
	}
	if requireDescription[b.Type] && strings.TrimSpace(b.Description) == "" {
		return false
	}
	return true
}

// CalculateReadinessScore вычисляет оценку готовности поездки (0-100):
// 60% веса - доля полностью заполненных блоков от целевого количества,
// 40% - доля выполненных задач (или нейтральные 50, если задач нет).
func CalculateReadinessScore(blocks []Block, todos []Todo, days int) int {
	if days < 1 {
		days = 1
	}

	completed := 0
	for _, b := range blocks {
		if IsBlockComplete(b) {
			completed++
		}
	}
	blockScore := float64(completed) / (float64(days) * completeBlocksPerDay) * 100
	if blockScore > 100 {
		blockScore = 100
	}

	todoScore := neutralTodoScore
	if len(todos) > 0 {
		done := 0
		for _, t := range todos {
			if t.Completed {
				done++
			}
		}
		todoScore = float64(done) / float64(len(todos)) * 100
	}

	total := math.Round(0.6*blockScore + 0.4*todoScore)
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return int(total)
}
