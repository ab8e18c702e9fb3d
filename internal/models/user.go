package models

import "time"

// User представляет пользователя системы. UID — идентификатор,
// назначаемый хранилищем; ID — внешний доменный идентификатор,
// которым оперируют вызывающие стороны и на который ссылаются расходы.
type User struct {
	UID           string    `json:"-"`              // Идентификатор, назначаемый хранилищем
	ID            int64     `json:"id"`             // Внешний идентификатор пользователя
	FirstName     string    `json:"first_name"`     // Имя
	LastName      string    `json:"last_name"`      // Фамилия
	Birthday      time.Time `json:"birthday"`       // Дата рождения
	MaritalStatus string    `json:"marital_status"` // Семейное положение: single, married, divorced, widowed
}

// UserSummary — ответ на запрос сводки по пользователю:
// профильные поля и суммарный расход за всю историю.
type UserSummary struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Total     float64 `json:"total"`
}

// TeamMember — элемент статического списка команды разработчиков.
type TeamMember struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Birthday      time.Time `json:"birthday"`
	MaritalStatus string    `json:"marital_status"`
}
