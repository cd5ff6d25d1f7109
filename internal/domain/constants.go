package domain

// Calendar constants
const (
	HoursPerDay = 24
	MinYear     = 2020
	MaxYear     = 2100
)

// Default zone rates (euros per hour), overridable in config
const (
	DefaultNearMetroRate = 10.0
	DefaultStandardRate  = 12.0
)

// Business validation constants
const (
	MinHourlyRate     = 1.0
	MaxHourlyRate     = 100.0
	MaxNotesLength    = 500
	MaxAddressLength  = 300
	MaxFullNameLength = 120
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих часы
// Используется при подсчете занятых часов дня
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих часы
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
