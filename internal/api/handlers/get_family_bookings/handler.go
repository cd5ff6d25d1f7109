package get_family_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	"github.com/lucerocare/LRM-BookingService/internal/api/middleware"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings"
	"github.com/lucerocare/LRM-BookingService/internal/service/bookings/models"
	"github.com/lucerocare/LRM-BookingService/pkg/ptr"
)

const (
	msgInvalidFamilyID = "ID de familia no válido"
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

// Handle GET /api/v1/families/{familyId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	familyID, err := uuid.Parse(vars["familyId"])
	if err != nil {
		h.logger.Warn("GET /families/{id}/bookings - Invalid family ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFamilyID)
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /families/{id}/bookings - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	req := &models.GetFamilyBookingsRequest{FamilyID: familyID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetFamilyBookings(r.Context(), req, identity)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /families/{id}/bookings - Access denied: family=%s, user=%s", familyID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /families/{id}/bookings - Invalid status: family=%s", familyID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /families/{id}/bookings - Failed to get bookings: family=%s, error=%v", familyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /families/{id}/bookings - Retrieved %d bookings for family=%s",
		len(result.Bookings), familyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
