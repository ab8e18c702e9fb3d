// Package models содержит доменные структуры трекера расходов:
// пользователей, записи расходов, месячные отчёты,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "fmt"

// Category — закрытое перечисление категорий расходов.
// Любое значение вне фиксированного набора отклоняется до записи в хранилище.
type Category string

// Допустимые категории расходов.
const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySport     Category = "sport"
	CategoryEducation Category = "education"
)

// Categories задаёт фиксированный порядок категорий в отчёте.
var Categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySport,
	CategoryEducation,
}

// ParseCategory преобразует строку в Category,
// возвращая ошибку для значений вне перечисления.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}

// IsValid сообщает, входит ли значение в фиксированный набор категорий.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryHealth, CategoryHousing, CategorySport, CategoryEducation:
		return true
	}
	return false
}
