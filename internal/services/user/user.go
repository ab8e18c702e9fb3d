// Package services содержит бизнес-логику сводки по пользователю:
// профиль и суммарный расход за всю историю.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// UserRepository определяет методы для работы с пользователями
// и их расходами в хранилище.
type UserRepository interface {
	// GetUserByID возвращает пользователя по внешнему идентификатору.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// SumCostsByUser подсчитывает суммарный расход пользователя без фильтра по датам.
	SumCostsByUser(ctx context.Context, userID int64) (float64, error)
}

// UserService реализует бизнес-логику сводки по пользователю.
// Сводка каждый раз считается заново по полной истории: кеша
// и предрассчитанного итога у операции нет.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// Summary возвращает профильные поля пользователя и его суммарный
// расход. Пустая история расходов даёт итог ровно 0. Ошибка
// repository.ErrUserNotFound пробрасывается вызывающему без изменений.
func (s *UserService) Summary(ctx context.Context, id int64) (*models.UserSummary, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.SumCostsByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Total:     total,
	}, nil
}
