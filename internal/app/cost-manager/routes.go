// Package costmanager предоставляет маршруты для основного приложения.
package costmanager

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/cost-manager/internal/http/handlers/about"
	"github.com/magabrotheeeer/cost-manager/internal/http/handlers/cost/add"
	"github.com/magabrotheeeer/cost-manager/internal/http/handlers/cost/report"
	"github.com/magabrotheeeer/cost-manager/internal/http/handlers/user/summary"
	"github.com/magabrotheeeer/cost-manager/internal/http/middlewarectx"
	aboutservice "github.com/magabrotheeeer/cost-manager/internal/services/about"
	costservice "github.com/magabrotheeeer/cost-manager/internal/services/cost"
	userservice "github.com/magabrotheeeer/cost-manager/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
// Пути и методы зафиксированы контрактом API.
func RegisterRoutes(r chi.Router, logger *slog.Logger, costService *costservice.CostService, userService *userservice.UserService, aboutService *aboutservice.AboutService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/add", add.New(logger, costService).ServeHTTP)
		r.Get("/report", report.New(logger, costService).ServeHTTP)
		r.Get("/users/{id}", summary.New(logger, userService).ServeHTTP)
		r.Get("/about", about.New(logger, aboutService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
