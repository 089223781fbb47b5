package score

import "math"

// Целевые плотности наполнения: блоков и задач на один день поездки.
const (
	blocksPerDayTarget = 2.2
	todosPerDayTarget  = 0.8
)

// CalculatePlanningScore вычисляет оценку наполненности плана (0-100)
// по количеству блоков, задач и длительности поездки в днях.
// Оценка отражает покрытие дней и приближение к целевому количеству
// блоков/задач; отрицательные и нулевые входы приводятся к допустимым.
func CalculatePlanningScore(blocksCount, todosCount, days int) int {
	if days < 1 {
		days = 1
	}
	if blocksCount < 0 {
		blocksCount = 0
	}
	if todosCount < 0 {
		todosCount = 0
	}

	blockTarget := float64(days) * blocksPerDayTarget
	todoTarget := float64(days) * todosPerDayTarget

	// Приближение покрытия дней: считаем, что каждый блок закрывает
	// отдельный день. При нескольких блоках в одном дне оценка завышается.
	coveredDays := blocksCount
	if coveredDays > days {
		coveredDays = days
	}

	blockScore := 0.6*math.Min(1, float64(coveredDays)/float64(days)) +
		0.4*math.Min(1, float64(blocksCount)/blockTarget)
	// Корень даёт убывающую отдачу: первые задачи ценнее последних.
	todoScore := math.Sqrt(math.Min(1, float64(todosCount)/todoTarget))

	total := 0.85*blockScore + 0.15*todoScore
	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}
	return int(math.Round(total * 100))
}
