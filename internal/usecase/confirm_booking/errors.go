package confirm_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("confirm_booking: service not found")

	// ErrServiceInactive возвращается при бронировании неактивной услуги
	ErrServiceInactive = errors.New("confirm_booking: service is not active")

	// ErrDayNotAvailable возвращается, когда на выбранную дату нет открытых часов
	ErrDayNotAvailable = errors.New("confirm_booking: no open hours on this date")

	// ErrHoursNotOpen возвращается, когда запрошенные часы не входят в открытые
	ErrHoursNotOpen = errors.New("confirm_booking: requested hours are not open")

	// ErrHoursTaken возвращается, когда запрошенные часы пересекаются с занятыми
	ErrHoursTaken = errors.New("confirm_booking: requested hours are already taken")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("confirm_booking: invalid booking date")

	// ErrInvalidHours возвращается при некорректном наборе часов
	ErrInvalidHours = errors.New("confirm_booking: invalid hour set")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
