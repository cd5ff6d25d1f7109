package domain

import "time"

// AvailabilityDay represents one calendar day's admin-declared bookable hours.
// A row exists only while Hours is non-empty; an empty set means the row
// must be deleted, never stored.
type AvailabilityDay struct {
	Year  int
	Month int // 1..12
	Day   int // 1..31
	Hours HourSet

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Date returns the day as a time.Time at midnight UTC.
func (d *AvailabilityDay) Date() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// IsValidDate reports whether (year, month, day) denotes a real calendar day.
func IsValidDate(year, month, day int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return date.Year() == year && int(date.Month()) == month && date.Day() == day
}
