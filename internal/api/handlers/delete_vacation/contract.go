package delete_vacation

import (
	"context"

	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// VacationService интерфейс сервиса отпусков
type VacationService interface {
	DeleteVacation(ctx context.Context, vacationID int64, userID, teamID string) (*models.VacationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
