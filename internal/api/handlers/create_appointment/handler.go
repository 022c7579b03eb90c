package create_appointment

import (
	"errors"
	"net/http"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
	createAppointment "github.com/RRibeiro-047/carlach-detailing/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados do agendamento inválidos"
	msgInvalidTimeSlot    = "horário inválido, escolha um dos horários disponíveis"
	msgClosedOnSunday     = "Não trabalhamos aos domingos. Por favor, escolha de segunda a sábado."
	msgSlotNotAvailable   = "Este horário já foi reservado. Por favor, escolha outro horário."
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s",
				req.AppointmentDate, req.AppointmentTime)
			h.respondSlotConflict(w, err)

		case errors.Is(err, createAppointment.ErrNotBusinessDay):
			h.logger.Warn("POST /appointments - Not a business day: date=%s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgClosedOnSunday)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: time=%s", req.AppointmentTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.AppointmentDate, req.AppointmentTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, date=%s, time=%s, degraded=%t",
		result.Appointment.ID, result.Appointment.AppointmentDate, result.Appointment.AppointmentTime, result.Degraded)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondSlotConflict(w http.ResponseWriter, err error) {
	resp := &SlotConflictResponse{
		Code:           http.StatusConflict,
		Message:        msgSlotNotAvailable,
		AvailableSlots: []string{},
	}

	var conflictErr *createAppointment.SlotConflictError
	if errors.As(err, &conflictErr) && conflictErr.Available != nil {
		resp.AvailableSlots = conflictErr.Available
	}

	handlers.RespondJSON(w, http.StatusConflict, resp)
}
