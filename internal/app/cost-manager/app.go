// Package costmanager собирает приложение: хранилище, миграции, кеш,
// необязательную публикацию событий и HTTP-сервер.
package costmanager

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/cost-manager/internal/cache"
	"github.com/magabrotheeeer/cost-manager/internal/config"
	"github.com/magabrotheeeer/cost-manager/internal/lib/sl"
	"github.com/magabrotheeeer/cost-manager/internal/migrations"
	"github.com/magabrotheeeer/cost-manager/internal/rabbitmq"
	aboutservice "github.com/magabrotheeeer/cost-manager/internal/services/about"
	costservice "github.com/magabrotheeeer/cost-manager/internal/services/cost"
	userservice "github.com/magabrotheeeer/cost-manager/internal/services/user"
	"github.com/magabrotheeeer/cost-manager/internal/storage/repository"
)

// App связывает HTTP-сервер и внешние соединения приложения.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	cache    *cache.Cache
	amqpConn *amqp.Connection
}

// New инициализирует все зависимости приложения по конфигу.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var amqpConn *amqp.Connection
	var events costservice.EventPublisher
	if cfg.AMQPConnectionString != "" {
		amqpConn, err = rabbitmq.Connect(cfg.AMQPConnectionString, 5, 2*time.Second)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(amqpConn)
		if err != nil {
			return nil, err
		}
		events = rabbitmq.NewPublisher(ch)
	} else {
		logger.Info("amqp connection string is empty, cost events disabled")
	}

	costService := costservice.NewCostService(db, cacheRedis, events, logger)
	userService := userservice.NewUserService(db, logger)
	aboutService := aboutservice.NewAboutService()

	router := chi.NewRouter()
	RegisterRoutes(router, logger, costService, userService, aboutService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		cache:    cacheRedis,
		amqpConn: amqpConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
// Внешние соединения освобождаются на любом пути завершения,
// включая ошибку запуска сервера.
func (a *App) Run(ctx context.Context) error {
	defer a.closeConnections()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

func (a *App) closeConnections() {
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.logger.Warn("failed to close amqp connection", sl.Err(err))
		}
	}
	_ = a.db.DB.Close()
}
