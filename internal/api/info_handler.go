package api

import (
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/config"
)

// BuildInfo is the body of GET /api/build-info.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// InfoHandler serves the static, configuration driven endpoints.
type InfoHandler struct {
	contact config.ContactConfig
	build   BuildInfo
	logger  *slog.Logger
}

// NewInfoHandler creates an InfoHandler from the loaded configuration.
func NewInfoHandler(cfg *config.Config, logger *slog.Logger) *InfoHandler {
	if cfg == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("config cannot be nil for InfoHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for InfoHandler")
	}

	return &InfoHandler{
		contact: cfg.Contact,
		build:   BuildInfo{Service: cfg.Service, Version: cfg.Build.Version},
		logger:  logger.With(slog.String("component", "info_handler")),
	}
}

// ContactInfo handles GET /api/contact-info.
func (h *InfoHandler) ContactInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.contact)
}

// BuildInfo handles GET /api/build-info.
func (h *InfoHandler) BuildInfo(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.build)
}
