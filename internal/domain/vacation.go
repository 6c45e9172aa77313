package domain

import "time"

// ReasonCode символьный код результата операции
// Преобразование кода в текст для пользователя - задача внешнего слоя локализации
type ReasonCode string

const (
	ReasonPeriodWrongSequence ReasonCode = "vacation.period.wrong.sequence"
	ReasonPeriodInterfere     ReasonCode = "vacation.period.interfere.error"
	ReasonAddSuccess          ReasonCode = "add.vacation.success"
)

// VacationInfo represents a vacation reservation of a team member
type VacationInfo struct {
	ID                  int64
	UserID              string
	TeamID              string
	DateFrom            time.Time
	DateTo              time.Time
	SubstitutionUserIDs []string
	StatusChanged       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActiveOn returns true if the vacation covers the given date (inclusive on both ends)
func (v *VacationInfo) IsActiveOn(date time.Time) bool {
	return DateWithinRange(date, v.DateFrom, v.DateTo)
}

// IsUpcomingFrom returns true if the vacation starts on the given date or later
func (v *VacationInfo) IsUpcomingFrom(date time.Time) bool {
	return !v.DateFrom.Before(date)
}

// DateWithinRange reports whether d lies within [from, to], inclusive on both ends
func DateWithinRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

// ToDate обрезает время до начала календарного дня (UTC, как и даты из хранилища)
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
