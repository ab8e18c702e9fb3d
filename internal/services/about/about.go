// Package services содержит статический справочник команды разработчиков.
package services

import (
	"time"

	"github.com/magabrotheeeer/cost-manager/internal/models"
)

// team — неизменяемый список участников, инициализируется один раз
// при старте процесса и далее только читается.
var team = []models.TeamMember{
	{
		ID:            208471226,
		FirstName:     "Dana",
		LastName:      "Levi",
		Birthday:      time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
		MaritalStatus: "single",
	},
	{
		ID:            211354634,
		FirstName:     "Omer",
		LastName:      "Mizrahi",
		Birthday:      time.Date(1997, 11, 3, 0, 0, 0, 0, time.UTC),
		MaritalStatus: "married",
	},
}

// AboutService отдаёт фиксированный список команды.
type AboutService struct{}

// NewAboutService создает новый экземпляр AboutService.
func NewAboutService() *AboutService {
	return &AboutService{}
}

// Team возвращает фиксированный список участников команды.
func (s *AboutService) Team() []models.TeamMember {
	return team
}
