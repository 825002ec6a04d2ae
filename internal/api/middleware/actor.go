package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/platform/logger"
)

// ActorMiddleware resolves the audit actor for each request and stores it
// in the request context.
type ActorMiddleware struct {
	resolver audit.Resolver
	logger   *slog.Logger
}

// NewActorMiddleware creates a new ActorMiddleware with the given resolver.
func NewActorMiddleware(resolver audit.Resolver, logger *slog.Logger) *ActorMiddleware {
	if resolver == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("resolver cannot be nil for ActorMiddleware")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ActorMiddleware{
		resolver: resolver,
		logger:   logger.With(slog.String("component", "actor_middleware")),
	}
}

// Resolve rejects requests whose Authorization header cannot be resolved
// to an actor with 401 and passes the rest on with the actor attached.
func (m *ActorMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOrDefault(r.Context(), m.logger)

		actor, err := m.resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			message := "Invalid token"
			switch {
			case errors.Is(err, audit.ErrExpiredToken):
				message = "Token expired"
			case errors.Is(err, audit.ErrInvalidAuthorization):
				message = "Invalid authorization format"
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, message, err,
				shared.WithElevatedLogLevel())
			return
		}

		log.Debug("resolved request actor", slog.String("actor", actor.String()))
		next.ServeHTTP(w, r.WithContext(audit.WithActor(r.Context(), actor)))
	})
}
