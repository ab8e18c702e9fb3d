// Package report реализует HTTP-обработчик месячного отчёта по расходам.
//
// Handler извлекает id, year и month из параметров запроса, вызывает
// бизнес-логику построения отчёта и возвращает отчёт в JSON-формате.
// Параметры, не являющиеся целыми числами, отклоняются до обращения
// к хранилищу.
package report

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/cost-manager/internal/http/response"
	"github.com/magabrotheeeer/cost-manager/internal/lib/sl"
	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// Handler обрабатывает запросы месячного отчёта пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики построения отчёта
}

// Service описывает интерфейс бизнес-логики построения отчёта.
type Service interface {
	BuildReport(ctx context.Context, userID int64, year, month int) (*models.Report, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Месячный отчёт по расходам
// @Description Возвращает расходы пользователя за месяц, сгруппированные по фиксированной последовательности категорий.
// @Tags Costs
// @Produce  json
// @Param id query int true "Идентификатор пользователя"
// @Param year query int true "Год"
// @Param month query int true "Месяц"
// @Success 200 {object} models.Report "Отчёт"
// @Failure 400 {object} response.ErrorResponse "Нечисловые параметры"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /report [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cost.report"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, errID := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errID != nil || errYear != nil || errMonth != nil {
		log.Error("failed to parse query parameters")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Invalid id, year or month."))
		return
	}

	report, err := h.service.BuildReport(r.Context(), userID, year, month)
	if err != nil {
		log.Error("failed to build report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build report"))
		return
	}

	log.Info("success to build report",
		slog.Int64("userid", userID), slog.Int("year", year), slog.Int("month", month))
	render.JSON(w, r, report)
}
