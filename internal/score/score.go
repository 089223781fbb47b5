// Package score содержит чистые функции расчёта оценок наполненности
// и готовности плана путешествия (0-100).
package score

// Block - минимальное представление блока расписания, достаточное для расчёта.
type Block struct {
	Type        string
	Title       string
	Time        string
	Location    string
	Description string
}

// Todo - минимальное представление задачи для расчёта готовности.
type Todo struct {
	Completed bool
}
