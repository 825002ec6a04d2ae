package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/redact"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a HealthHandler. *sql.DB satisfies Pinger.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pinger cannot be nil for HealthHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}
	return &HealthHandler{db: db, logger: logger.With(slog.String("component", "health_handler"))}
}

// Health handles GET /health. An unreachable database answers 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Warn("health check failed", slog.String("error", redact.Error(err)))
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthStatus{Status: "DOWN", Database: "DOWN"})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HealthStatus{Status: "UP", Database: "UP"})
}
