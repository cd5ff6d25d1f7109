package set_availability_day

// SetDayHoursRequest HTTP request model
// Пустой список часов закрывает день целиком
type SetDayHoursRequest struct {
	Hours []int `json:"hours"`
}

// SetDayHoursResponse HTTP response model
type SetDayHoursResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Day   int   `json:"day"`
	Hours []int `json:"hours"`
}
