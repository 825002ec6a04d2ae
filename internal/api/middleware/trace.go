package middleware

import (
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that assigns each request a trace ID
// and a request-scoped logger carrying it. A well-formed inbound X-Trace-Id
// header is reused; anything else is replaced with a fresh ID. The ID is
// echoed in the response header.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if inbound := r.Header.Get(shared.TraceIDHeader); shared.IsValidTraceID(inbound) {
				ctx = shared.WithTraceID(ctx, inbound)
			} else {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
