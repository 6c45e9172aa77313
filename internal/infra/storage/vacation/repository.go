package vacation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VacationService/internal/domain"
	"github.com/m04kA/SMC-VacationService/pkg/psqlbuilder"
)

var vacationColumns = []string{
	"id",
	"user_id",
	"team_id",
	"date_from",
	"date_to",
	"substitution_user_ids",
	"status_changed",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями об отпусках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отпусков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись об отпуске
// Идентификатор и таймстемпы присваиваются базой и возвращаются в переданной структуре
func (r *Repository) Create(ctx context.Context, info *domain.VacationInfo) (*domain.VacationInfo, error) {
	query, args, err := psqlbuilder.Insert("vacations").
		Columns(
			"user_id",
			"team_id",
			"date_from",
			"date_to",
			"substitution_user_ids",
			"status_changed",
		).
		Values(
			info.UserID,
			info.TeamID,
			info.DateFrom,
			info.DateTo,
			pq.StringArray(info.SubstitutionUserIDs),
			info.StatusChanged,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&info.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	info.CreatedAt = createdAt.Time
	info.UpdatedAt = updatedAt.Time

	return info, nil
}

// Delete удаляет запись об отпуске по ID (физическое удаление, soft-delete не используется)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("vacations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVacationNotFound
	}

	return nil
}

// GetByUserAndTeam получает все записи пользователя в рамках команды
// Порядок не гарантируется - сортировка выполняется на уровне сервиса
func (r *Repository) GetByUserAndTeam(ctx context.Context, userID, teamID string) ([]*domain.VacationInfo, error) {
	query, args, err := psqlbuilder.Select(vacationColumns...).
		From("vacations").
		Where(squirrel.Eq{"user_id": userID, "team_id": teamID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndTeam - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndTeam - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVacations(rows)
}

// GetByTeamAndDateContains получает записи команды, период которых включает указанную дату
// Границы периода включаются в проверку
func (r *Repository) GetByTeamAndDateContains(ctx context.Context, teamID string, date time.Time) ([]*domain.VacationInfo, error) {
	query, args, err := psqlbuilder.Select(vacationColumns...).
		From("vacations").
		Where(squirrel.Eq{"team_id": teamID}).
		Where(squirrel.LtOrEq{"date_from": date}).
		Where(squirrel.GtOrEq{"date_to": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDateContains - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDateContains - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVacations(rows)
}

// GetByTeamAndDateFromGTE получает записи команды, начинающиеся с указанной даты или позже
func (r *Repository) GetByTeamAndDateFromGTE(ctx context.Context, teamID string, date time.Time) ([]*domain.VacationInfo, error) {
	query, args, err := psqlbuilder.Select(vacationColumns...).
		From("vacations").
		Where(squirrel.Eq{"team_id": teamID}).
		Where(squirrel.GtOrEq{"date_from": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDateFromGTE - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTeamAndDateFromGTE - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVacations(rows)
}

// GetPendingStatusUpdates получает записи, для которых ещё не был обновлён статус
// пользователя и отпуск не завершился до указанной даты
// Используется фоновым обработчиком обновления статусов
func (r *Repository) GetPendingStatusUpdates(ctx context.Context, date time.Time) ([]*domain.VacationInfo, error) {
	query, args, err := psqlbuilder.Select(vacationColumns...).
		From("vacations").
		Where(squirrel.GtOrEq{"date_to": date}).
		Where(squirrel.Eq{"status_changed": false}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingStatusUpdates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingStatusUpdates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVacations(rows)
}

// MarkStatusChanged помечает запись как обработанную обновлением статуса
func (r *Repository) MarkStatusChanged(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("vacations").
		Set("status_changed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkStatusChanged - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkStatusChanged - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkStatusChanged - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVacationNotFound
	}

	return nil
}

// scanVacations сканирует результаты запроса в слайс записей об отпусках
func (r *Repository) scanVacations(rows *sql.Rows) ([]*domain.VacationInfo, error) {
	vacations := make([]*domain.VacationInfo, 0)

	for rows.Next() {
		var info domain.VacationInfo
		var substitutions pq.StringArray
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&info.ID,
			&info.UserID,
			&info.TeamID,
			&info.DateFrom,
			&info.DateTo,
			&substitutions,
			&info.StatusChanged,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanVacations - scan row: %v", ErrScanRow, err)
		}

		info.SubstitutionUserIDs = []string(substitutions)
		info.CreatedAt = createdAt.Time
		info.UpdatedAt = updatedAt.Time

		vacations = append(vacations, &info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVacations - rows error: %v", ErrScanRow, err)
	}

	return vacations, nil
}
