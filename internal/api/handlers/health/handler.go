package health

import (
	"context"
	"net/http"
	"time"

	"github.com/RRibeiro-047/carlach-detailing/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	database Pinger
	cache    Pinger
	logger   Logger
}

func NewHandler(database, cache Pinger, logger Logger) *Handler {
	return &Handler{
		database: database,
		cache:    cache,
		logger:   logger,
	}
}

// Handle GET /health
// 200 while at least one store is reachable, 503 when both are down.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := &HealthResponse{
		Status:   statusOK,
		Database: h.check(ctx, "database", h.database),
		Cache:    h.check(ctx, "cache", h.cache),
	}

	switch {
	case resp.Database == statusDown && resp.Cache == statusDown:
		resp.Status = statusDown
		handlers.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	case resp.Database == statusDown || resp.Cache == statusDown:
		resp.Status = statusDegraded
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) check(ctx context.Context, name string, p Pinger) string {
	if err := p.Ping(ctx); err != nil {
		h.logger.Warn("GET /health - %s unreachable: %v", name, err)
		return statusDown
	}
	return statusUp
}
