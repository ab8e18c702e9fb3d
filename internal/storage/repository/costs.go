package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// CreateCost вставляет новую запись расхода и возвращает её ID,
// назначенный хранилищем.
func (s *Storage) CreateCost(ctx context.Context, cost models.Cost) (int64, error) {
	const op = "storage.CreateCost"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO costs (description, category, user_id, sum, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		cost.Description, string(cost.Category), cost.UserID, cost.Sum, cost.CreatedAt).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListCostsInWindow возвращает расходы пользователя с created_at
// в полуинтервале [start, end), упорядоченные по моменту создания.
func (s *Storage) ListCostsInWindow(ctx context.Context, userID int64, start, end time.Time) ([]models.Cost, error) {
	const op = "storage.ListCostsInWindow"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, description, category, user_id, sum, created_at
			  FROM costs
			  WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Cost
	for rows.Next() {
		var c models.Cost
		var category string
		if err = rows.Scan(&c.ID, &c.Description, &category, &c.UserID, &c.Sum, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		c.Category = models.Category(category)
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SumCostsByUser подсчитывает суммарный расход пользователя за всю
// историю без фильтра по датам. Пустая история даёт ровно 0.
func (s *Storage) SumCostsByUser(ctx context.Context, userID int64) (float64, error) {
	const op = "storage.SumCostsByUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(sum), 0)
			  FROM costs
			  WHERE user_id = $1`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
