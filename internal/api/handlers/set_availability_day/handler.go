package set_availability_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	"github.com/lucerocare/LRM-BookingService/internal/domain"
	availability "github.com/lucerocare/LRM-BookingService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidDate        = "fecha no válida"
	msgInvalidHours       = "las horas indicadas no son válidas"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/availability/{year}/{month}/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, errY := strconv.Atoi(vars["year"])
	month, errM := strconv.Atoi(vars["month"])
	day, errD := strconv.Atoi(vars["day"])
	if errY != nil || errM != nil || errD != nil {
		h.logger.Warn("PUT /admin/availability - Invalid path params: %v", vars)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetDayHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours := domain.NewHourSet(req.Hours...)
	if hours.Len() != len(req.Hours) {
		// NewHourSet отбрасывает значения вне 0-23 и дубликаты
		h.logger.Warn("PUT /admin/availability - Invalid hours: %v", req.Hours)
		handlers.RespondBadRequest(w, msgInvalidHours)
		return
	}

	if err := h.service.SetDayHours(r.Context(), year, month, day, hours); err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDate):
			h.logger.Warn("PUT /admin/availability - Invalid date %04d-%02d-%02d", year, month, day)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availability.ErrInvalidHours):
			h.logger.Warn("PUT /admin/availability - Invalid hours for %04d-%02d-%02d: %v", year, month, day, req.Hours)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /admin/availability - Failed to set hours for %04d-%02d-%02d: %v", year, month, day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability - Hours set for %04d-%02d-%02d: %s", year, month, day, hours.Encode())
	handlers.RespondJSON(w, http.StatusOK, SetDayHoursResponse{
		Year:  year,
		Month: month,
		Day:   day,
		Hours: hours.Sorted(),
	})
}
