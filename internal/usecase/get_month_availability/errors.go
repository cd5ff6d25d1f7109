package get_month_availability

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном месяце или годе
	ErrInvalidMonth = errors.New("get_month_availability: invalid month")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_month_availability: internal error")
)
