package models

import "time"

// Cost представляет одну запись расхода, используемую
// в бизнес-логике и хранилище. ID назначается хранилищем и
// не совпадает с доменным идентификатором пользователя UserID.
type Cost struct {
	ID          int64     `json:"id"`          // Идентификатор записи, назначаемый хранилищем
	Description string    `json:"description"` // Описание расхода
	Category    Category  `json:"category"`    // Категория из фиксированного перечисления
	UserID      int64     `json:"userid"`      // Доменный идентификатор пользователя
	Sum         float64   `json:"sum"`         // Сумма расхода
	CreatedAt   time.Time `json:"createdAt"`   // Момент создания, единственная временная ось отчётов
}

// DummyCost используется для приёма данных из JSON-запроса
// до их валидации и преобразования в Cost. CreatedAt приходит строкой
// RFC3339 и может отсутствовать — тогда запись получает текущее время.
type DummyCost struct {
	Description string   `json:"description" validate:"required"`                                        // Описание расхода
	Category    string   `json:"category" validate:"required,oneof=food health housing sport education"` // Категория
	UserID      *int64   `json:"userid" validate:"required"`                                             // Идентификатор пользователя
	Sum         *float64 `json:"sum" validate:"required"`                                                // Сумма
	CreatedAt   string   `json:"createdAt,omitempty" validate:"omitempty"`                               // Момент создания (опционально)
}
