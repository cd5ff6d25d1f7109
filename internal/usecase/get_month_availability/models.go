package get_month_availability

// Request модель запроса открытых часов месяца
type Request struct {
	Year  int
	Month int
}

// DayHours открытые часы одного дня месяца
type DayHours struct {
	Day   int
	Hours []int
}

// Response модель ответа с открытыми днями месяца
// Дни без открытых часов не включаются
type Response struct {
	Year  int
	Month int
	Days  []DayHours
}
