package report

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// MockService реализует интерфейс report.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) BuildReport(ctx context.Context, userID int64, year, month int) (*models.Report, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func emptyGroups() []models.CategoryGroup {
	groups := make([]models.CategoryGroup, 0, len(models.Categories))
	for _, category := range models.Categories {
		groups = append(groups, models.CategoryGroup{category: []models.ReportItem{}})
	}
	return groups
}

func TestReportHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "нечисловой id",
			query:          "id=abc&year=2025&month=6",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid id, year or month."}`,
		},
		{
			name:           "нечисловой year",
			query:          "id=7&year=twenty&month=6",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid id, year or month."}`,
		},
		{
			name:           "отсутствует month",
			query:          "id=7&year=2025",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid id, year or month."}`,
		},
		{
			name:  "ошибка хранилища",
			query: "id=7&year=2025&month=6",
			setupMock: func(m *MockService) {
				m.On("BuildReport", mock.Anything, int64(7), 2025, 6).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"could not build report"}`,
		},
		{
			name:  "пустой месяц содержит все пять групп",
			query: "id=7&year=2025&month=2",
			setupMock: func(m *MockService) {
				m.On("BuildReport", mock.Anything, int64(7), 2025, 2).Return(&models.Report{
					UserID: 7,
					Year:   2025,
					Month:  2,
					Costs:  emptyGroups(),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"userid":7,"year":2025,"month":2,"costs":[{"food":[]},{"health":[]},{"housing":[]},{"sport":[]},{"education":[]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/report?"+tt.query, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestReportHandler_GroupOrderIsFixed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	groups := emptyGroups()
	groups[0] = models.CategoryGroup{models.CategoryFood: []models.ReportItem{{Sum: 12, Description: "Lunch", Day: 1}}}

	mockSvc := new(MockService)
	mockSvc.On("BuildReport", mock.Anything, int64(7), 2025, 6).Return(&models.Report{
		UserID: 7,
		Year:   2025,
		Month:  6,
		Costs:  groups,
	}, nil)

	handler := New(logger, mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/report?id=7&year=2025&month=6", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Порядок групп проверяется по сырому JSON: ключи категорий должны
	// идти в фиксированной последовательности.
	var raw struct {
		Costs []json.RawMessage `json:"costs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw.Costs, 5)

	wantKeys := []string{"food", "health", "housing", "sport", "education"}
	for i, groupJSON := range raw.Costs {
		var group map[string][]models.ReportItem
		require.NoError(t, json.Unmarshal(groupJSON, &group))
		require.Len(t, group, 1)
		_, ok := group[wantKeys[i]]
		assert.True(t, ok, "group %d must be keyed by %q", i, wantKeys[i])
	}

	food := []models.ReportItem{}
	require.NoError(t, json.Unmarshal([]byte(`[{"sum":12,"description":"Lunch","day":1}]`), &food))
	var first map[string][]models.ReportItem
	require.NoError(t, json.Unmarshal(raw.Costs[0], &first))
	assert.Equal(t, food, first["food"])
}
