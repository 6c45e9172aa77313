package vacations

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VacationService/internal/domain"
	"github.com/m04kA/SMC-VacationService/internal/service/vacations/models"
)

// validateRequest валидирует входные данные запроса на добавление отпуска
func validateRequest(req *models.AddVacationRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID must not be empty", ErrInvalidInput)
	}

	if req.TeamID == "" {
		return fmt.Errorf("%w: teamID must not be empty", ErrInvalidInput)
	}

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo must be set", ErrInvalidInput)
	}

	return nil
}

// validatePeriod проверяет предлагаемый период против существующих отпусков пользователя
// Возвращает пустой код, если период допустим
//
// Проверка односторонняя: на попадание в существующие периоды тестируются только
// границы нового периода. Новый период, целиком накрывающий существующий и не
// касающийся его границами, проверку проходит.
func validatePeriod(existing []*domain.VacationInfo, dateFrom, dateTo time.Time) domain.ReasonCode {
	if dateFrom.After(dateTo) {
		return domain.ReasonPeriodWrongSequence
	}

	for _, v := range existing {
		if domain.DateWithinRange(dateFrom, v.DateFrom, v.DateTo) ||
			domain.DateWithinRange(dateTo, v.DateFrom, v.DateTo) {
			return domain.ReasonPeriodInterfere
		}
	}

	return ""
}
