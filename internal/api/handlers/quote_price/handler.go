package quote_price

import (
	"net/http"
	"strconv"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
	"github.com/RRibeiro-047/carlach-detailing/internal/domain"
	quotePrice "github.com/RRibeiro-047/carlach-detailing/internal/usecase/quote_price"
)

const (
	msgInvalidWax   = "parâmetro wax inválido, esperado true ou false"
	msgInvalidInput = "porte do veículo ou tipo de serviço inválido"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/prices
// Query params: carSize, serviceType (required), wax (optional bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	wax := false
	if raw := query.Get("wax"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /prices - Invalid wax flag: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidWax)
			return
		}
		wax = parsed
	}

	result, err := h.useCase.Execute(&quotePrice.Request{
		CarSize:        domain.CarSize(query.Get("carSize")),
		ServiceType:    domain.ServiceType(query.Get("serviceType")),
		WaxApplication: wax,
	})
	if err != nil {
		h.logger.Warn("GET /prices - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, wax))
}
