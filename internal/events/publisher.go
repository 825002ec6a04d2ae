package events

import (
	"context"
	"log/slog"

	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/redact"
)

// LogPublisher writes account notifications to the structured log.
// It stands in for an external message channel.
type LogPublisher struct {
	logger *slog.Logger
}

var _ EventHandler = (*LogPublisher)(nil)

// NewLogPublisher creates a publisher that logs through l.
func NewLogPublisher(l *slog.Logger) *LogPublisher {
	if l == nil {
		l = slog.Default()
	}
	return &LogPublisher{logger: l.With(slog.String("component", "log_publisher"))}
}

// HandleEvent logs account.created events with contact details masked.
// Events of other types are ignored.
func (p *LogPublisher) HandleEvent(ctx context.Context, event *Event) error {
	log := logger.FromContextOrDefault(ctx, p.logger)

	if event.Type != TypeAccountCreated {
		log.Debug("ignoring event", slog.String("event_type", event.Type))
		return nil
	}

	msg, err := event.AccountsMsg()
	if err != nil {
		return err
	}

	log.Info("published account notification",
		slog.String("event_id", event.ID.String()),
		slog.Int64("account_number", msg.AccountNumber),
		slog.String("email", redact.Email(msg.Email)),
		slog.String("mobile_number", redact.Mobile(msg.MobileNumber)))
	return nil
}
