package vacations

import "errors"

var (
	// ErrVacationNotFound возвращается, когда запись об отпуске не найдена
	ErrVacationNotFound = errors.New("vacation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
