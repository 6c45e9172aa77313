package vacations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VacationService/internal/domain"
	vacationRepo "github.com/m04kA/SMC-VacationService/internal/infra/storage/vacation"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// fakeRepository in-memory реализация VacationRepository
type fakeRepository struct {
	vacations map[int64]*domain.VacationInfo
	nextID    int64

	failWith error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		vacations: make(map[int64]*domain.VacationInfo),
		nextID:    1,
	}
}

func (r *fakeRepository) add(info *domain.VacationInfo) *domain.VacationInfo {
	stored := *info
	stored.ID = r.nextID
	r.nextID++
	r.vacations[stored.ID] = &stored
	return &stored
}

func (r *fakeRepository) Create(_ context.Context, info *domain.VacationInfo) (*domain.VacationInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.add(info), nil
}

func (r *fakeRepository) Delete(_ context.Context, id int64) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.vacations[id]; !ok {
		return vacationRepo.ErrVacationNotFound
	}
	delete(r.vacations, id)
	return nil
}

func (r *fakeRepository) GetByUserAndTeam(_ context.Context, userID, teamID string) ([]*domain.VacationInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]*domain.VacationInfo, 0)
	for _, v := range r.vacations {
		if v.UserID == userID && v.TeamID == teamID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (r *fakeRepository) GetByTeamAndDateContains(_ context.Context, teamID string, date time.Time) ([]*domain.VacationInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]*domain.VacationInfo, 0)
	for _, v := range r.vacations {
		if v.TeamID == teamID && v.IsActiveOn(date) {
			result = append(result, v)
		}
	}
	return result, nil
}

func (r *fakeRepository) GetByTeamAndDateFromGTE(_ context.Context, teamID string, date time.Time) ([]*domain.VacationInfo, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]*domain.VacationInfo, 0)
	for _, v := range r.vacations {
		if v.TeamID == teamID && v.IsUpcomingFrom(date) {
			result = append(result, v)
		}
	}
	return result, nil
}

// fakeNotifier фиксирует вызовы диспетчера нотификаций
type fakeNotifier struct {
	teams []string
}

func (n *fakeNotifier) Notify(_ context.Context, teamID string) {
	n.teams = append(n.teams, teamID)
}

// noopLogger реализация Logger для тестов
type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// fixedTimeProvider источник фиксированного времени
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(repo *fakeRepository, notifier *fakeNotifier, now string) *Service {
	svc := NewService(repo, notifier, noopLogger{})
	if now != "" {
		parsed, _ := time.Parse(domain.DateFormat, now)
		svc.timeProvider = &fixedTimeProvider{now: parsed}
	}
	return svc
}

func TestService_AddVacation_Success(t *testing.T) {
	repo := newFakeRepository()
	repo.add(vacation(t, 0, "2018-06-16", "2018-06-18"))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, "")

	resp, err := svc.AddVacation(context.Background(), &models.AddVacationRequest{
		UserID:   "U1",
		TeamID:   "T1",
		DateFrom: date(t, "2018-06-19"),
		DateTo:   date(t, "2018-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonAddSuccess, resp.Code)
	assert.Len(t, repo.vacations, 2)
	assert.Equal(t, []string{"T1"}, notifier.teams)
}

func TestService_AddVacation_PeriodConflict(t *testing.T) {
	repo := newFakeRepository()
	repo.add(vacation(t, 0, "2018-06-16", "2018-06-18"))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, "")

	resp, err := svc.AddVacation(context.Background(), &models.AddVacationRequest{
		UserID:   "U1",
		TeamID:   "T1",
		DateFrom: date(t, "2018-06-17"),
		DateTo:   date(t, "2018-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonPeriodInterfere, resp.Code)
	// Запись не создана, нотификация не отправлена
	assert.Len(t, repo.vacations, 1)
	assert.Empty(t, notifier.teams)
}

func TestService_AddVacation_WrongSequence(t *testing.T) {
	repo := newFakeRepository()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, "")

	resp, err := svc.AddVacation(context.Background(), &models.AddVacationRequest{
		UserID:   "U1",
		TeamID:   "T1",
		DateFrom: date(t, "2018-06-20"),
		DateTo:   date(t, "2018-06-19"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonPeriodWrongSequence, resp.Code)
	assert.Empty(t, repo.vacations)
	assert.Empty(t, notifier.teams)
}

func TestService_AddVacation_ConflictOnlyWithinSameUser(t *testing.T) {
	repo := newFakeRepository()
	other := vacation(t, 0, "2018-06-16", "2018-06-18")
	other.UserID = "U2"
	repo.add(other)
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, "")

	resp, err := svc.AddVacation(context.Background(), &models.AddVacationRequest{
		UserID:   "U1",
		TeamID:   "T1",
		DateFrom: date(t, "2018-06-16"),
		DateTo:   date(t, "2018-06-18"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonAddSuccess, resp.Code)
}

func TestService_AddVacation_StoreFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.failWith = errors.New("connection refused")
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, "")

	_, err := svc.AddVacation(context.Background(), &models.AddVacationRequest{
		UserID:   "U1",
		TeamID:   "T1",
		DateFrom: date(t, "2018-06-16"),
		DateTo:   date(t, "2018-06-18"),
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.teams)
}

func TestService_ShowVacationsForUser_SortedByDateFrom(t *testing.T) {
	repo := newFakeRepository()
	repo.add(vacation(t, 0, "2018-07-01", "2018-07-05"))
	repo.add(vacation(t, 0, "2018-06-16", "2018-06-18"))
	repo.add(vacation(t, 0, "2018-08-01", "2018-08-02"))
	svc := newTestService(repo, &fakeNotifier{}, "")

	resp, err := svc.ShowVacationsForUser(context.Background(), "U1", "T1")

	require.NoError(t, err)
	require.Len(t, resp.Vacations, 3)
	assert.Equal(t, "2018-06-16 - 2018-06-18 ", resp.Vacations[0].Text)
	assert.Equal(t, "2018-07-01 - 2018-07-05 ", resp.Vacations[1].Text)
	assert.Equal(t, "2018-08-01 - 2018-08-02 ", resp.Vacations[2].Text)

	// Повторное чтение без мутаций даёт идентичный результат
	again, err := svc.ShowVacationsForUser(context.Background(), "U1", "T1")
	require.NoError(t, err)
	assert.Equal(t, resp, again)
}

func TestService_ShowVacationsForUser_RendersSubstitutions(t *testing.T) {
	repo := newFakeRepository()
	info := vacation(t, 0, "2018-06-16", "2018-06-18")
	info.SubstitutionUserIDs = []string{"U2", "U3"}
	repo.add(info)
	svc := newTestService(repo, &fakeNotifier{}, "")

	resp, err := svc.ShowVacationsForUser(context.Background(), "U1", "T1")

	require.NoError(t, err)
	require.Len(t, resp.Vacations, 1)
	assert.Equal(t, "2018-06-16 - 2018-06-18 <U2>, <U3>", resp.Vacations[0].Text)
}

func TestService_DeleteVacation_Success(t *testing.T) {
	repo := newFakeRepository()
	first := repo.add(vacation(t, 0, "2018-06-16", "2018-06-18"))
	repo.add(vacation(t, 0, "2018-07-01", "2018-07-05"))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, "")

	resp, err := svc.DeleteVacation(context.Background(), first.ID, "U1", "T1")

	require.NoError(t, err)
	require.Len(t, resp.Vacations, 1)
	assert.Equal(t, "2018-07-01 - 2018-07-05 ", resp.Vacations[0].Text)
	assert.Equal(t, []string{"T1"}, notifier.teams)
}

func TestService_DeleteVacation_NotFound(t *testing.T) {
	repo := newFakeRepository()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, "")

	_, err := svc.DeleteVacation(context.Background(), 5, "U1", "T1")

	assert.ErrorIs(t, err, ErrVacationNotFound)
	// Нотификация при неудачном удалении не отправляется
	assert.Empty(t, notifier.teams)
}

func TestService_ShowActiveOn(t *testing.T) {
	repo := newFakeRepository()
	repo.add(vacation(t, 0, "2018-06-16", "2018-06-18"))
	covering := vacation(t, 0, "2018-06-10", "2018-06-20")
	covering.UserID = "U2"
	repo.add(covering)
	past := vacation(t, 0, "2018-06-01", "2018-06-05")
	past.UserID = "U3"
	repo.add(past)
	svc := newTestService(repo, &fakeNotifier{}, "")

	resp, err := svc.ShowActiveOn(context.Background(), "T1", date(t, "2018-06-17"))

	require.NoError(t, err)
	require.Len(t, resp.Vacations, 2)
	assert.Equal(t, "<user:U2> 2018-06-10 - 2018-06-20 ", resp.Vacations[0].Text)
	assert.Equal(t, "<user:U1> 2018-06-16 - 2018-06-18 ", resp.Vacations[1].Text)
}

func TestService_ShowAllUpcoming(t *testing.T) {
	repo := newFakeRepository()
	repo.add(vacation(t, 0, "2018-06-20", "2018-06-25"))
	repo.add(vacation(t, 0, "2018-06-01", "2018-06-05"))
	startsToday := vacation(t, 0, "2018-06-17", "2018-06-18")
	startsToday.UserID = "U2"
	repo.add(startsToday)
	svc := newTestService(repo, &fakeNotifier{}, "2018-06-17")

	resp, err := svc.ShowAllUpcoming(context.Background(), "T1")

	require.NoError(t, err)
	require.Len(t, resp.Vacations, 2)
	assert.Equal(t, "<user:U2> 2018-06-17 - 2018-06-18 ", resp.Vacations[0].Text)
	assert.Equal(t, "<user:U1> 2018-06-20 - 2018-06-25 ", resp.Vacations[1].Text)
}
