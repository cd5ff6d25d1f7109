package get_open_hours

import (
	getOpenHours "github.com/lucerocare/LRM-BookingService/internal/usecase/get_open_hours"
)

// DayHoursResponse HTTP response model
type DayHoursResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`

	Open       []int `json:"open"`
	Taken      []int `json:"taken"`
	Selectable []int `json:"selectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOpenHours.Response) *DayHoursResponse {
	return &DayHoursResponse{
		Year:       resp.Year,
		Month:      resp.Month,
		Day:        resp.Day,
		Open:       resp.Open,
		Taken:      resp.Taken,
		Selectable: resp.Selectable,
	}
}
