package notifier

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-VacationService/internal/domain"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

const (
	resultOK      = "ok"
	resultError   = "error"
	resultSkipped = "skipped"
)

// Service диспетчер нотификаций командного канала
// После каждой мутации пересобирает проекцию "отпуска с сегодняшнего дня"
// и отправляет её в настроенный канал. Отправка best-effort: сбои логируются
// и не откатывают уже зафиксированную мутацию
type Service struct {
	vacationRepo VacationRepository
	messenger    MessengerClient
	timeProvider TimeProvider
	metrics      MetricsCollector
	logger       Logger

	enabled   bool
	channelID string

	// Сериализует чтение проекции и отправку: нотификация не может уехать
	// в канал со снапшотом старее, чем у предыдущей отправки
	mu sync.Mutex
}

// NewService создает новый экземпляр диспетчера нотификаций
// metrics может быть nil, если сбор метрик выключен
func NewService(
	vacationRepo VacationRepository,
	messenger MessengerClient,
	metrics MetricsCollector,
	logger Logger,
	enabled bool,
	channelID string,
) *Service {
	return &Service{
		vacationRepo: vacationRepo,
		messenger:    messenger,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
		enabled:      enabled,
		channelID:    channelID,
	}
}

// Notify отправляет в канал актуальный список отпусков команды
// При выключенной нотификации вызов является no-op
func (s *Service) Notify(ctx context.Context, teamID string) {
	if !s.enabled {
		s.incMetric(resultSkipped)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := domain.ToDate(s.timeProvider.Now())

	vacations, err := s.vacationRepo.GetByTeamAndDateFromGTE(ctx, teamID, today)
	if err != nil {
		s.logger.Error("Notify: failed to load upcoming vacations for team=%s: %v", teamID, err)
		s.incMetric(resultError)
		return
	}

	text := models.TeamListResponse(vacations).RenderLines()

	if err := s.messenger.PostMessage(ctx, s.channelID, text); err != nil {
		s.logger.Error("Notify: failed to post message to channel=%s for team=%s: %v", s.channelID, teamID, err)
		s.incMetric(resultError)
		return
	}

	s.logger.Info("Notify: channel=%s notified for team=%s (%d upcoming vacations)",
		s.channelID, teamID, len(vacations))
	s.incMetric(resultOK)
}

func (s *Service) incMetric(result string) {
	if s.metrics != nil {
		s.metrics.IncNotification(result)
	}
}
