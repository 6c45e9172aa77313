package update_status

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("update_status: internal error")
)
