// Package services содержит бизнес-логику работы с записями расходов:
// валидацию и создание записей, построение месячных отчётов и кеширование.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/cost-manager/internal/lib/monthrange"
	"github.com/magabrotheeeer/cost-manager/internal/lib/sl"
	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// CostRepository определяет методы для работы с расходами в хранилище.
type CostRepository interface {
	// CreateCost добавляет новую запись и возвращает её ID.
	CreateCost(ctx context.Context, cost models.Cost) (int64, error)
	// ListCostsInWindow возвращает записи пользователя с created_at в [start, end).
	ListCostsInWindow(ctx context.Context, userID int64, start, end time.Time) ([]models.Cost, error)
}

// Cache описывает методы для кэширования отчётов.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// EventPublisher публикует события о созданных записях.
type EventPublisher interface {
	PublishCostCreated(cost models.Cost) error
}

// CostService реализует бизнес-логику работы с расходами.
// events может быть nil — тогда события не публикуются.
type CostService struct {
	repo   CostRepository
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// NewCostService создает новый экземпляр CostService.
func NewCostService(repo CostRepository, cache Cache, events EventPublisher, log *slog.Logger) *CostService {
	return &CostService{
		repo:   repo,
		cache:  cache,
		events: events,
		log:    log,
	}
}

// Create проверяет и сохраняет новую запись расхода. Если момент создания
// не передан, запись получает текущее время. Повторные одинаковые вызовы
// создают отдельные записи: идемпотентности у операции нет.
func (s *CostService) Create(ctx context.Context, req models.DummyCost) (*models.Cost, error) {
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}

	createdAt := time.Now().UTC()
	if req.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, req.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid createdAt: %w", err)
		}
	}

	cost := models.Cost{
		Description: req.Description,
		Category:    category,
		UserID:      *req.UserID,
		Sum:         *req.Sum,
		CreatedAt:   createdAt,
	}

	id, err := s.repo.CreateCost(ctx, cost)
	if err != nil {
		return nil, err
	}
	cost.ID = id

	s.log.Info("created new cost", slog.Int64("id", id))

	created := cost.CreatedAt.UTC()
	cacheKey := reportKey(cost.UserID, created.Year(), int(created.Month()))
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate report cache", slog.String("key", cacheKey), sl.Err(err))
	}

	if s.events != nil {
		if err := s.events.PublishCostCreated(cost); err != nil {
			s.log.Warn("failed to publish cost created event", sl.Err(err))
		}
	}

	return &cost, nil
}

// BuildReport строит месячный отчёт пользователя: записи месяца
// группируются по фиксированной последовательности категорий, каждая
// запись попадает в свою группу с днём месяца, вычисленным в UTC.
// Группы присутствуют в отчёте всегда, в том числе пустые.
// Пара (год, месяц) нормализуется календарно до ключа кеша и полей
// отчёта: месяц 13 даёт тот же отчёт, что январь следующего года,
// и инвалидация при создании записи попадает в тот же ключ.
func (s *CostService) BuildReport(ctx context.Context, userID int64, year, month int) (*models.Report, error) {
	start, end := monthrange.Window(year, month)
	year, month = start.Year(), int(start.Month())

	cacheKey := reportKey(userID, year, month)
	var cached models.Report
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		return nil, err
	}
	if found {
		return &cached, nil
	}

	costs, err := s.repo.ListCostsInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	buckets := make(map[models.Category][]models.ReportItem, len(models.Categories))
	for _, c := range costs {
		buckets[c.Category] = append(buckets[c.Category], models.ReportItem{
			Sum:         c.Sum,
			Description: c.Description,
			Day:         c.CreatedAt.UTC().Day(),
		})
	}

	groups := make([]models.CategoryGroup, 0, len(models.Categories))
	for _, category := range models.Categories {
		items := buckets[category]
		if items == nil {
			items = []models.ReportItem{}
		}
		groups = append(groups, models.CategoryGroup{category: items})
	}

	report := &models.Report{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  groups,
	}

	if err := s.cache.Set(cacheKey, report, time.Hour); err != nil {
		s.log.Warn("failed to cache report", slog.String("key", cacheKey), sl.Err(err))
	}

	return report, nil
}

func reportKey(userID int64, year, month int) string {
	return fmt.Sprintf("report:%d:%04d-%02d", userID, year, month)
}
