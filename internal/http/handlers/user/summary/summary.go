// Package summary реализует HTTP-обработчик сводки по пользователю.
//
// Handler извлекает идентификатор пользователя из URL-параметров,
// вызывает бизнес-логику подсчёта суммарного расхода и возвращает
// профильные поля вместе с итогом в JSON-формате.
package summary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/cost-manager/internal/http/response"
	"github.com/magabrotheeeer/cost-manager/internal/lib/sl"
	"github.com/magabrotheeeer/cost-manager/internal/models"
	"github.com/magabrotheeeer/cost-manager/internal/storage/repository"
)

// Handler обрабатывает запросы сводки по пользователю.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики сводки
}

// Service описывает интерфейс бизнес-логики сводки по пользователю.
type Service interface {
	Summary(ctx context.Context, id int64) (*models.UserSummary, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка по пользователю
// @Description Возвращает профильные поля пользователя и суммарный расход за всю историю.
// @Tags Users
// @Produce  json
// @Param id path int true "Идентификатор пользователя"
// @Success 200 {object} models.UserSummary "Сводка"
// @Failure 400 {object} response.ErrorResponse "Нечисловой идентификатор"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.summary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid user ID."))
		return
	}

	summary, err := h.service.Summary(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("User not found."))
			return
		}
		log.Error("failed to get user summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not get user summary"))
		return
	}

	log.Info("success to get user summary", slog.Int64("id", id))
	render.JSON(w, r, summary)
}
