package show_upcoming

import (
	"context"

	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// VacationService интерфейс сервиса отпусков
type VacationService interface {
	ShowAllUpcoming(ctx context.Context, teamID string) (*models.VacationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
