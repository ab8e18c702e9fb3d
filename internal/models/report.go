package models

// ReportItem — одна запись расхода в месячном отчёте.
// Day — день месяца момента создания записи, вычисленный в UTC.
type ReportItem struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// CategoryGroup — группа отчёта с единственным ключом-категорией.
// Маршалится в JSON как объект вида {"food": [...]}.
type CategoryGroup map[Category][]ReportItem

// Report — месячный отчёт пользователя. Costs всегда содержит ровно
// пять групп в фиксированном порядке Categories, в том числе пустые.
type Report struct {
	UserID int64           `json:"userid"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Costs  []CategoryGroup `json:"costs"`
}
