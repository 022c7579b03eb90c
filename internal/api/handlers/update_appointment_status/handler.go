package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
	"github.com/RRibeiro-047/carlach-detailing/internal/service/appointments"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidStatus        = "status inválido"
	msgAppointmentNotFound  = "agendamento não encontrado"
	msgStorageUnavailable   = "não foi possível atualizar o agendamento"
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

// Handle PATCH /api/v1/admin/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid status: id=%s, status=%s", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrStorageUnavailable):
			h.logger.Error("PATCH /admin/appointments/{id}/status - Storage unavailable: id=%s, error=%v", id, err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/status - Failed to update status: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/status - Status updated: id=%s, status=%s, degraded=%t",
		id, req.Status, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
