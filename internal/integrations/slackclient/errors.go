package slackclient

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slackclient: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Web API
	ErrInvalidResponse = errors.New("slackclient: invalid response")

	// ErrAPIError возвращается, когда Web API ответил ok=false
	ErrAPIError = errors.New("slackclient: api error")
)
