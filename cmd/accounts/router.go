package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/easybank/easybank-services/internal/api"
	apiMiddleware "github.com/easybank/easybank-services/internal/api/middleware"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/config"
	"github.com/easybank/easybank-services/internal/service"
)

// newRouter registers the accounts routes. Writes run behind the actor
// middleware so the audit columns name the caller.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	accounts service.AccountService,
	resolver audit.Resolver,
	db api.Pinger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout()))
	r.Use(apiMiddleware.NewTraceMiddleware(logger))

	actors := apiMiddleware.NewActorMiddleware(resolver, logger)
	accountsHandler := api.NewAccountsHandler(accounts, audit.Actor(cfg.Audit.SystemActor), logger)
	infoHandler := api.NewInfoHandler(cfg, logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/fetch", accountsHandler.FetchAccount)
		r.Delete("/delete", accountsHandler.DeleteAccount)

		r.Group(func(r chi.Router) {
			r.Use(actors.Resolve)
			r.Post("/create", accountsHandler.CreateAccount)
			r.Put("/update", accountsHandler.UpdateAccount)
		})

		r.Get("/contact-info", infoHandler.ContactInfo)
		r.Get("/build-info", infoHandler.BuildInfo)
		r.Get("/docs", api.DocsHandler(api.NewOpenAPIDocument(cfg.Service, cfg.Docs)))
	})

	r.Get("/health", api.NewHealthHandler(db, logger).Health)

	return r
}
