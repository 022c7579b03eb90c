package get_available_slots

import getAvailableSlots "github.com/RRibeiro-047/carlach-detailing/internal/usecase/get_available_slots"

const (
	// MsgClosedOnSunday shown instead of the slot grid for Sundays
	MsgClosedOnSunday = "Não trabalhamos aos domingos. Por favor, escolha de segunda a sábado."

	// MsgFullyBooked shown when every slot of a business day is taken
	MsgFullyBooked = "Não há horários disponíveis para esta data."
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string   `json:"date"`
	BusinessDay bool     `json:"business_day"`
	Slots       []string `json:"slots"`
	Message     string   `json:"message,omitempty"`
	Degraded    bool     `json:"degraded"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	out := &AvailableSlotsResponse{
		Date:        resp.Date,
		BusinessDay: resp.BusinessDay,
		Slots:       slots,
		Degraded:    resp.Degraded,
	}
	switch {
	case !resp.BusinessDay:
		out.Message = MsgClosedOnSunday
	case len(slots) == 0:
		out.Message = MsgFullyBooked
	}
	return out
}
