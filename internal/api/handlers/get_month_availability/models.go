package get_month_availability

import (
	getMonth "github.com/lucerocare/LRM-BookingService/internal/usecase/get_month_availability"
)

// DayHours открытые часы одного дня
type DayHours struct {
	Day   int   `json:"day"`
	Hours []int `json:"hours"`
}

// MonthResponse HTTP response model
type MonthResponse struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Days  []DayHours `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonth.Response) *MonthResponse {
	days := make([]DayHours, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayHours{Day: d.Day, Hours: d.Hours}
	}
	return &MonthResponse{
		Year:  resp.Year,
		Month: resp.Month,
		Days:  days,
	}
}
