package get_open_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	getOpenHours "github.com/lucerocare/LRM-BookingService/internal/usecase/get_open_hours"
)

const (
	msgInvalidDate = "fecha no válida"
)

type Handler struct {
	useCase GetOpenHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetOpenHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{year}/{month}/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, errY := strconv.Atoi(vars["year"])
	month, errM := strconv.Atoi(vars["month"])
	day, errD := strconv.Atoi(vars["day"])
	if errY != nil || errM != nil || errD != nil {
		h.logger.Warn("GET /availability/{year}/{month}/{day} - Invalid path params: %v", vars)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getOpenHours.Request{
		Year:  year,
		Month: month,
		Day:   day,
	})
	if err != nil {
		switch {
		case errors.Is(err, getOpenHours.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date %04d-%02d-%02d", year, month, day)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to get open hours for %04d-%02d-%02d: %v", year, month, day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
