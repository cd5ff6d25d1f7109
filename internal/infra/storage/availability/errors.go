package availability

import "errors"

var (
	// ErrDayNotFound возвращается, когда запись дня не найдена
	ErrDayNotFound = errors.New("availability.repository: day not found")

	// ErrEmptyHours возвращается при попытке сохранить день с пустым набором часов
	// Пустой набор по контракту означает удаление записи, а не её сохранение
	ErrEmptyHours = errors.New("availability.repository: refusing to store empty hour set")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
