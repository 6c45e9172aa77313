package vacations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
	vacationRepo "github.com/m04kA/SMC-VacationService/internal/infra/storage/vacation"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// Service сервис планирования отпусков
// Выполняет валидацию периода, мутации хранилища и построение представлений;
// после каждой мутации дергает диспетчер нотификаций
type Service struct {
	vacationRepo VacationRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отпусков
func NewService(
	vacationRepo VacationRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		vacationRepo: vacationRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// AddVacation добавляет отпуск пользователю
// Отклонение валидацией не является ошибкой: код причины возвращается в ответе,
// его преобразование в текст - задача внешнего слоя локализации
func (s *Service) AddVacation(ctx context.Context, req *models.AddVacationRequest) (*models.AddVacationResponse, error) {
	s.logger.Info("AddVacation: user=%s team=%s period=%s - %s",
		req.UserID, req.TeamID, req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		s.logger.Warn("AddVacation: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.vacationRepo.GetByUserAndTeam(ctx, req.UserID, req.TeamID)
	if err != nil {
		s.logger.Error("AddVacation: repository error for user=%s team=%s: %v", req.UserID, req.TeamID, err)
		return nil, fmt.Errorf("%w: AddVacation - repository error: %v", ErrInternal, err)
	}

	if code := validatePeriod(existing, req.DateFrom, req.DateTo); code != "" {
		s.logger.Warn("AddVacation: period rejected for user=%s team=%s: %s", req.UserID, req.TeamID, code)
		return &models.AddVacationResponse{Code: code}, nil
	}

	info := &domain.VacationInfo{
		UserID:              req.UserID,
		TeamID:              req.TeamID,
		DateFrom:            req.DateFrom,
		DateTo:              req.DateTo,
		SubstitutionUserIDs: req.SubstitutionUserIDs,
		StatusChanged:       false,
	}

	created, err := s.vacationRepo.Create(ctx, info)
	if err != nil {
		s.logger.Error("AddVacation: failed to save vacation for user=%s team=%s: %v", req.UserID, req.TeamID, err)
		return nil, fmt.Errorf("%w: AddVacation - failed to save vacation: %v", ErrInternal, err)
	}

	s.logger.Info("AddVacation: vacation id=%d saved for user=%s team=%s", created.ID, req.UserID, req.TeamID)

	s.notifier.Notify(ctx, req.TeamID)

	return &models.AddVacationResponse{Code: domain.ReasonAddSuccess}, nil
}

// ShowVacationsForUser возвращает отпуска пользователя, отсортированные по дате начала
func (s *Service) ShowVacationsForUser(ctx context.Context, userID, teamID string) (*models.VacationListResponse, error) {
	s.logger.Info("ShowVacationsForUser: user=%s team=%s", userID, teamID)

	vacations, err := s.vacationRepo.GetByUserAndTeam(ctx, userID, teamID)
	if err != nil {
		s.logger.Error("ShowVacationsForUser: repository error for user=%s team=%s: %v", userID, teamID, err)
		return nil, fmt.Errorf("%w: ShowVacationsForUser - repository error: %v", ErrInternal, err)
	}

	return models.UserListResponse(vacations), nil
}

// DeleteVacation удаляет отпуск по ID и возвращает обновлённый список пользователя
// Принадлежность записи пользователю на этом уровне не проверяется - идентификатор
// приходит из команды, уже ограниченной списком владельца
func (s *Service) DeleteVacation(ctx context.Context, vacationID int64, userID, teamID string) (*models.VacationListResponse, error) {
	s.logger.Info("DeleteVacation: id=%d user=%s team=%s", vacationID, userID, teamID)

	if err := s.vacationRepo.Delete(ctx, vacationID); err != nil {
		if errors.Is(err, vacationRepo.ErrVacationNotFound) {
			s.logger.Warn("DeleteVacation: vacation id=%d not found", vacationID)
			return nil, ErrVacationNotFound
		}
		s.logger.Error("DeleteVacation: repository error for id=%d: %v", vacationID, err)
		return nil, fmt.Errorf("%w: DeleteVacation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteVacation: vacation id=%d deleted", vacationID)

	vacations, err := s.vacationRepo.GetByUserAndTeam(ctx, userID, teamID)
	if err != nil {
		s.logger.Error("DeleteVacation: repository error for user=%s team=%s: %v", userID, teamID, err)
		return nil, fmt.Errorf("%w: DeleteVacation - repository error: %v", ErrInternal, err)
	}

	s.notifier.Notify(ctx, teamID)

	return models.UserListResponse(vacations), nil
}

// ShowActiveOn возвращает отпуска команды, активные на указанную дату (границы включаются)
func (s *Service) ShowActiveOn(ctx context.Context, teamID string, date time.Time) (*models.VacationListResponse, error) {
	s.logger.Info("ShowActiveOn: team=%s date=%s", teamID, date.Format(domain.DateFormat))

	vacations, err := s.vacationRepo.GetByTeamAndDateContains(ctx, teamID, date)
	if err != nil {
		s.logger.Error("ShowActiveOn: repository error for team=%s: %v", teamID, err)
		return nil, fmt.Errorf("%w: ShowActiveOn - repository error: %v", ErrInternal, err)
	}

	return models.TeamListResponse(vacations), nil
}

// ShowAllUpcoming возвращает отпуска команды, начинающиеся с сегодняшнего дня или позже
func (s *Service) ShowAllUpcoming(ctx context.Context, teamID string) (*models.VacationListResponse, error) {
	today := domain.ToDate(s.timeProvider.Now())
	s.logger.Info("ShowAllUpcoming: team=%s from=%s", teamID, today.Format(domain.DateFormat))

	vacations, err := s.vacationRepo.GetByTeamAndDateFromGTE(ctx, teamID, today)
	if err != nil {
		s.logger.Error("ShowAllUpcoming: repository error for team=%s: %v", teamID, err)
		return nil, fmt.Errorf("%w: ShowAllUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.TeamListResponse(vacations), nil
}
