package create_booking

import (
	"errors"
	"net/http"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	"github.com/lucerocare/LRM-BookingService/internal/api/middleware"
	confirmBooking "github.com/lucerocare/LRM-BookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDate        = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgInvalidHours       = "las horas seleccionadas no son válidas"
	msgDayNotAvailable    = "no hay horas disponibles en esta fecha"
	msgHoursNotOpen       = "alguna de las horas seleccionadas no está disponible"
	msgHoursTaken         = "alguna de las horas seleccionadas ya está reservada"
	msgServiceNotFound    = "servicio no encontrado"
	msgServiceInactive    = "el servicio no está disponible actualmente"
	msgDateInPast         = "la fecha de reserva no es válida"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidRequestBody)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и UUID)
	useCaseReq, err := req.ToUseCaseRequest(identity.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, confirmBooking.ErrHoursTaken):
			h.logger.Warn("POST /bookings - Hours taken: family=%s, date=%s", identity.UserID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgHoursTaken)

		case errors.Is(err, confirmBooking.ErrHoursNotOpen):
			h.logger.Warn("POST /bookings - Hours not open: family=%s, date=%s", identity.UserID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgHoursNotOpen)

		case errors.Is(err, confirmBooking.ErrDayNotAvailable):
			h.logger.Warn("POST /bookings - Day not available: family=%s, date=%s", identity.UserID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgDayNotAvailable)

		case errors.Is(err, confirmBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, confirmBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: service=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, confirmBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: family=%s, date=%s", identity.UserID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, confirmBooking.ErrInvalidHours):
			h.logger.Warn("POST /bookings - Invalid hours: family=%s, hours=%v", identity.UserID, req.Hours)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: family=%s", identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: family=%s, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, family=%s, date=%s",
		result.ID, identity.UserID, req.BookingDate)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
