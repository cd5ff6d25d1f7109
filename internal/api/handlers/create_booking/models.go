package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucerocare/LRM-BookingService/internal/domain"
	confirmBooking "github.com/lucerocare/LRM-BookingService/internal/usecase/confirm_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   string  `json:"serviceId"`
	BookingDate string  `json:"bookingDate"` // "2026-09-15"
	Hours       []int   `json:"hours"`       // [16, 17, 18]
	IsNearMetro bool    `json:"isNearMetro"`
	Address     *string `json:"address,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	FamilyID       string  `json:"familyId"`
	CaregiverID    string  `json:"caregiverId"`
	ServiceID      string  `json:"serviceId"`
	BookingDate    string  `json:"bookingDate"`
	StartAt        string  `json:"startAt"`
	EndAt          string  `json:"endAt"`
	Hours          []int   `json:"hours"`
	Status         string  `json:"status"`
	ServiceTitle   string  `json:"serviceTitle"`
	IsNearMetro    bool    `json:"isNearMetro"`
	RateApplied    float64 `json:"rateApplied"`
	PriceEstimated float64 `json:"priceEstimated"`
	Address        *string `json:"address,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(familyID uuid.UUID) (*confirmBooking.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &confirmBooking.Request{
		FamilyID:    familyID,
		ServiceID:   serviceID,
		Date:        bookingDate,
		Hours:       r.Hours,
		IsNearMetro: r.IsNearMetro,
		Address:     r.Address,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID.String(),
		FamilyID:       resp.FamilyID.String(),
		CaregiverID:    resp.CaregiverID.String(),
		ServiceID:      resp.ServiceID.String(),
		BookingDate:    resp.BookingDate.Format(domain.DateFormat),
		StartAt:        resp.StartAt.Format(time.RFC3339),
		EndAt:          resp.EndAt.Format(time.RFC3339),
		Hours:          resp.Hours,
		Status:         resp.Status,
		ServiceTitle:   resp.ServiceTitle,
		IsNearMetro:    resp.IsNearMetro,
		RateApplied:    resp.RateApplied,
		PriceEstimated: resp.PriceEstimated,
		Address:        resp.Address,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
