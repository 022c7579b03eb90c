package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments"
)

const (
	msgMissingAppointmentID = "ID do agendamento é obrigatório"
	msgNotFound             = "agendamento não encontrado"
	msgStorageUnavailable   = "não foi possível carregar o agendamento"
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

// Handle GET /api/v1/admin/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("GET /admin/appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /admin/appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrStorageUnavailable):
			h.logger.Error("GET /admin/appointments/{id} - Storage unavailable: id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /admin/appointments/{id} - Failed to get appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments/{id} - Appointment retrieved: id=%s, degraded=%t", id, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
