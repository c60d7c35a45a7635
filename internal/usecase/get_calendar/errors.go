package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrResourceNotFound возвращается, когда запрошенный ассистент не найден
	ErrResourceNotFound = errors.New("get_calendar: resource not found")

	// ErrInvalidWindow возвращается, когда рабочие часы не дают корректного окна
	ErrInvalidWindow = errors.New("get_calendar: invalid calendar window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
