package get_open_hours

// Request модель запроса открытых часов дня
type Request struct {
	Year  int
	Month int
	Day   int
}

// Response модель ответа с раскладкой часов дня
// selectable = open - taken: часы, которые семья может выбрать прямо сейчас
type Response struct {
	Year  int
	Month int
	Day   int

	Open       []int // Открытые няней часы
	Taken      []int // Часы активных бронирований
	Selectable []int // Доступные для выбора часы
}
