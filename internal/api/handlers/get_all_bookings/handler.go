package get_all_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	"github.com/lucerocare/LRM-BookingService/internal/api/middleware"
	"github.com/lucerocare/LRM-BookingService/internal/domain"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
	"github.com/lucerocare/LRM-BookingService/pkg/ptr"
)

const (
	msgInvalidDate     = "formato de fecha no válido, se espera YYYY-MM-DD"
	msgInvalidStatus   = "estado de reserva no válido"
	msgMissingIdentity = "se requiere autenticación"
	msgForbidden       = "no tienes permisos para ver estas reservas"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings?startDate=2026-09-01&endDate=2026-09-30&status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/bookings - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	query := r.URL.Query()
	req := &models.GetAllBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = ptr.Ptr(date)
	}

	if raw := query.Get("endDate"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = ptr.Ptr(date)
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetAllBookings(r.Context(), req, identity)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user=%s", identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: user=%s", identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Retrieved %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
