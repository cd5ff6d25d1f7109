package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents one bookable care service from the catalogue
// ("Canguro tardes", "Noches y fines de semana", "Recogida del cole").
type Service struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	BaseRateHour float64
	IsActive     bool
	DurationMin  int

	CreatedAt time.Time
	UpdatedAt time.Time
}
