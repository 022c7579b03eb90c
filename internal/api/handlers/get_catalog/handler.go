package get_catalog

import (
	"net/http"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
)

type Handler struct {
	catalog *CatalogResponse
	logger  Logger
}

// NewHandler builds the catalog once; it never changes at runtime
func NewHandler(logger Logger) *Handler {
	return &Handler{
		catalog: NewCatalogResponse(),
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
// Public endpoint, no auth
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /catalog - Catalog served")
	handlers.RespondJSON(w, http.StatusOK, h.catalog)
}
