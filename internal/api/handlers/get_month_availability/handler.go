package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
	getMonth "github.com/lucerocare/LRM-BookingService/internal/usecase/get_month_availability"
)

const (
	msgInvalidMonth = "mes no válido"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, errY := strconv.Atoi(vars["year"])
	month, errM := strconv.Atoi(vars["month"])
	if errY != nil || errM != nil {
		h.logger.Warn("GET /availability/{year}/{month} - Invalid path params: %v", vars)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonth.Request{
		Year:  year,
		Month: month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonth.ErrInvalidMonth):
			h.logger.Warn("GET /availability - Invalid month %04d-%02d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability - Failed to get month %04d-%02d: %v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
