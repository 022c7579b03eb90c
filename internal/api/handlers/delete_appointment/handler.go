package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments"
)

const (
	msgAppointmentNotFound  = "agendamento não encontrado"
	msgStorageUnavailable   = "não foi possível excluir o agendamento"
	msgMissingAppointmentID = "ID do agendamento é obrigatório"
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

// Handle DELETE /api/v1/admin/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("DELETE /admin/appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	degraded, err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /admin/appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrStorageUnavailable):
			h.logger.Error("DELETE /admin/appointments/{id} - Storage unavailable: id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("DELETE /admin/appointments/{id} - Failed to delete: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/appointments/{id} - Appointment deleted: id=%s, degraded=%t", id, degraded)
	handlers.RespondJSON(w, http.StatusOK, &DeleteResponse{ID: id, Deleted: true, Degraded: degraded})
}
