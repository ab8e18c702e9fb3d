// Package about реализует HTTP-обработчик статического справочника команды.
package about

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// Handler отдаёт фиксированный список команды разработчиков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс статического справочника.
type Service interface {
	Team() []models.TeamMember
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Команда разработчиков
// @Description Возвращает фиксированный список участников команды.
// @Tags About
// @Produce  json
// @Success 200 {array} models.TeamMember "Список команды"
// @Router /about [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.about"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	team := h.service.Team()

	log.Info("success to get team directory", slog.Int("members", len(team)))
	render.JSON(w, r, team)
}
