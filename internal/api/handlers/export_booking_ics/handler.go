package export_booking_ics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	"github.com/lucerocare/LRM-BookingService/internal/api/middleware"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings"
	"github.com/lucerocare/LRM-BookingService/pkg/ics"
)

const (
	msgInvalidBookingID = "ID de reserva no válido"
	msgNotFound         = "reserva no encontrada"
	msgMissingIdentity  = "se requiere autenticación"
	msgForbidden        = "no tienes permisos para ver esta reserva"
)

type Handler struct {
	service      BookingService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service BookingService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/calendar.ics
// Отдает бронирование в формате iCalendar для добавления в календарь
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/calendar.ics - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/calendar.ics - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, identity)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/calendar.ics - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/calendar.ics - Access denied: booking_id=%s, user=%s", bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/calendar.ics - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	event := ics.Event{
		UID:   booking.ID.String() + "@lucerocare",
		Title: booking.ServiceTitle,
		Description: fmt.Sprintf("Reserva de %d horas, precio estimado %.2f EUR",
			booking.HoursCount, booking.PriceEstimated),
		Start: booking.StartAt,
		End:   booking.EndAt,
	}
	if booking.Address != nil {
		event.Location = *booking.Address
	}

	document := ics.Generate(event, h.timeProvider.Now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=reserva-%s.ics", booking.BookingDate))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(document))

	h.logger.Info("GET /bookings/{id}/calendar.ics - Exported booking_id=%s for user=%s", bookingID, identity.UserID)
}
