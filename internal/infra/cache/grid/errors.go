package grid

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации сетки
	ErrEncode = errors.New("grid.cache: failed to encode grid")

	// ErrDecode возвращается при ошибке десериализации сетки
	ErrDecode = errors.New("grid.cache: failed to decode grid")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("grid.cache: redis error")
)
