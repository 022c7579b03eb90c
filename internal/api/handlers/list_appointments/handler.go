package list_appointments

import (
	"errors"
	"net/http"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments"
)

const (
	msgInvalidStatus      = "status inválido"
	msgStorageUnavailable = "não foi possível carregar os agendamentos"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: status (optional, "all" = no filter), search (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	statusStr := r.URL.Query().Get("status")
	search := r.URL.Query().Get("search")

	result, err := h.service.List(r.Context(), ToServiceRequest(statusStr, search))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /admin/appointments - Invalid status: %s", statusStr)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrStorageUnavailable):
			h.logger.Error("GET /admin/appointments - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: total=%d, days=%d, degraded=%t",
		result.Total, len(result.Days), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
