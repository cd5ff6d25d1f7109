package list_services

import (
	"net/http"

	"github.com/lucerocare/LRM-BookingService/internal/api/handlers"
)

type Handler struct {
	repo   ServiceRepository
	logger Logger
}

func NewHandler(repo ServiceRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
