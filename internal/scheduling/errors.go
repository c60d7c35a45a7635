package scheduling

import "errors"

var (
	// ErrInvalidWindow возвращается, когда окно пустое, перевернуто или не кратно часу
	ErrInvalidWindow = errors.New("scheduling: invalid time window")

	// ErrInvalidDayOffset возвращается, когда смещение дня недели вне диапазона 0..6
	ErrInvalidDayOffset = errors.New("scheduling: invalid day offset")

	// ErrInvalidViewMode возвращается для неизвестного режима отображения
	ErrInvalidViewMode = errors.New("scheduling: invalid view mode")
)
