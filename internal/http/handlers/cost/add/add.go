// Package add реализует HTTP-обработчик для создания новых записей расходов.
//
// Handler принимает JSON-запрос с данными расхода, валидирует их,
// вызывает бизнес-логику создания записи через сервис и возвращает
// созданную запись вместе с идентификатором, назначенным хранилищем.
//
// Валидация выполняется до обращения к хранилищу; при любой ошибке
// валидации или сохранения возвращается ответ 400 с описанием проблемы.
package add

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/cost-manager/internal/http/response"
	"github.com/magabrotheeeer/cost-manager/internal/lib/sl"
	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// Handler управляет HTTP-запросами на создание записей расходов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записи расхода.
type Service interface {
	Create(ctx context.Context, req models.DummyCost) (*models.Cost, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить запись расхода
// @Description Создает новую запись расхода. Возвращает созданную запись с идентификатором хранилища.
// @Tags Costs
// @Accept  json
// @Produce  json
// @Param request body models.DummyCost true "Данные новой записи"
// @Success 201 {object} models.Cost "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или сохранения"
// @Router /add [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cost.add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCost
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	cost, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create cost", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	log.Info("success to create cost", slog.Int64("id", cost.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, cost)
}
