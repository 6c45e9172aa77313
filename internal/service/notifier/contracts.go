package notifier

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
)

// VacationRepository интерфейс репозитория отпусков
type VacationRepository interface {
	GetByTeamAndDateFromGTE(ctx context.Context, teamID string, date time.Time) ([]*domain.VacationInfo, error)
}

// MessengerClient интерфейс клиента мессенджера для отправки сообщений в канал
type MessengerClient interface {
	PostMessage(ctx context.Context, channelID, text string) error
}

// MetricsCollector интерфейс сборщика метрик нотификаций
type MetricsCollector interface {
	IncNotification(result string)
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
