package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
	getAvailableSlots "github.com/RRibeiro-047/carlach-detailing/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "data é obrigatória"
	msgInvalidDate = "formato de data inválido, esperado AAAA-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), excludeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:      date,
		ExcludeID: query.Get("excludeId"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid date: date=%s, error=%v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved: date=%s, business_day=%t, slots_count=%d, degraded=%t",
		date, result.BusinessDay, len(result.Slots), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
