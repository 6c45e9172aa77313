package update_status

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// UseCase use case обновления статуса пользователей в мессенджере
// Запускается планировщиком независимо от операций сервиса отпусков:
// выбирает записи с date_to >= сегодня и не выставленным флагом status_changed,
// устанавливает статус и фиксирует флаг после успешной установки
type UseCase struct {
	vacationRepo VacationRepository
	messenger    MessengerClient
	timeProvider TimeProvider
	metrics      MetricsCollector
	logger       Logger

	statusEmoji string
}

// NewUseCase создает новый экземпляр use case обновления статусов
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	vacationRepo VacationRepository,
	messenger MessengerClient,
	metrics MetricsCollector,
	logger Logger,
	statusEmoji string,
) *UseCase {
	if statusEmoji == "" {
		statusEmoji = domain.DefaultStatusEmoji
	}

	return &UseCase{
		vacationRepo: vacationRepo,
		messenger:    messenger,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
		statusEmoji:  statusEmoji,
	}
}

// Execute выполняет один проход обновления статусов
// Сбой установки статуса для отдельной записи не прерывает проход:
// запись остаётся непомеченной и будет подхвачена следующим проходом
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	today := domain.ToDate(uc.timeProvider.Now())

	pending, err := uc.vacationRepo.GetPendingStatusUpdates(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - repository error: %v", ErrInternal, err)
	}

	result := &Result{Scanned: len(pending)}

	for _, info := range pending {
		statusText := fmt.Sprintf(domain.StatusTextTemplate, info.DateTo.Format(domain.DateFormat))
		expiration := statusExpiration(info.DateTo)

		if err := uc.messenger.SetUserStatus(ctx, info.UserID, uc.statusEmoji, statusText, expiration); err != nil {
			uc.logger.Warn("UpdateStatus: failed to set status for user=%s (vacation id=%d): %v",
				info.UserID, info.ID, err)
			uc.incMetric(resultError)
			continue
		}

		if err := uc.vacationRepo.MarkStatusChanged(ctx, info.ID); err != nil {
			uc.logger.Error("UpdateStatus: failed to mark vacation id=%d as processed: %v", info.ID, err)
			uc.incMetric(resultError)
			continue
		}

		uc.logger.Info("UpdateStatus: status for user=%s updated (vacation id=%d, until %s)",
			info.UserID, info.ID, info.DateTo.Format(domain.DateFormat))
		uc.incMetric(resultOK)
		result.Updated++
	}

	return result, nil
}

// statusExpiration возвращает момент снятия статуса в epoch seconds:
// начало дня, следующего за date_to, в локальной тайм-зоне процесса
func statusExpiration(dateTo time.Time) int64 {
	next := dateTo.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.Local).Unix()
}

func (uc *UseCase) incMetric(result string) {
	if uc.metrics != nil {
		uc.metrics.IncStatusUpdate(result)
	}
}
