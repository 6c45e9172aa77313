package update_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
)

// VacationRepository интерфейс репозитория отпусков
type VacationRepository interface {
	GetPendingStatusUpdates(ctx context.Context, date time.Time) ([]*domain.VacationInfo, error)
	MarkStatusChanged(ctx context.Context, id int64) error
}

// MessengerClient интерфейс клиента мессенджера для установки статуса пользователя
type MessengerClient interface {
	SetUserStatus(ctx context.Context, userID, emoji, statusText string, expiration int64) error
}

// MetricsCollector интерфейс сборщика метрик обновлений статуса
type MetricsCollector interface {
	IncStatusUpdate(result string)
}

// TimeProvider интерфейс источника текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider источник реального времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
