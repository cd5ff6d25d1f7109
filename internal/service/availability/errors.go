package availability

import "errors"

var (
	// ErrInvalidDate возвращается, когда (year, month, day) не является календарной датой
	ErrInvalidDate = errors.New("availability: invalid date")

	// ErrInvalidMonth возвращается при некорректной паре (year, month)
	ErrInvalidMonth = errors.New("availability: invalid month")

	// ErrInvalidHours возвращается, когда набор содержит часы вне диапазона 0..23
	ErrInvalidHours = errors.New("availability: invalid hour set")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
