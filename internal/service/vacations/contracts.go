package vacations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
)

// VacationRepository интерфейс репозитория отпусков
type VacationRepository interface {
	Create(ctx context.Context, info *domain.VacationInfo) (*domain.VacationInfo, error)
	Delete(ctx context.Context, id int64) error
	GetByUserAndTeam(ctx context.Context, userID, teamID string) ([]*domain.VacationInfo, error)
	GetByTeamAndDateContains(ctx context.Context, teamID string, date time.Time) ([]*domain.VacationInfo, error)
	GetByTeamAndDateFromGTE(ctx context.Context, teamID string, date time.Time) ([]*domain.VacationInfo, error)
}

// Notifier интерфейс диспетчера нотификаций командного канала
// Вызывается после каждой мутации; ошибки отправки диспетчер обрабатывает сам
type Notifier interface {
	Notify(ctx context.Context, teamID string)
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
