package show_active

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// VacationService интерфейс сервиса отпусков
type VacationService interface {
	ShowActiveOn(ctx context.Context, teamID string, date time.Time) (*models.VacationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
