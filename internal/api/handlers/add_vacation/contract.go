package add_vacation

import (
	"context"

	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// VacationService интерфейс сервиса отпусков
type VacationService interface {
	AddVacation(ctx context.Context, req *models.AddVacationRequest) (*models.AddVacationResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
