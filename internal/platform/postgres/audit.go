package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/store"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// auditColumns receives the nullable update columns during a scan.
type auditColumns struct {
	updatedAt sql.NullTime
	updatedBy sql.NullString
}

func (c auditColumns) apply(a *domain.Audit) {
	if c.updatedAt.Valid {
		t := c.updatedAt.Time
		a.UpdatedAt = &t
	}
	if c.updatedBy.Valid {
		a.UpdatedBy = c.updatedBy.String
	}
}

func checkActor(actor audit.Actor) error {
	if !actor.Valid() {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, audit.ErrInvalidActor)
	}
	return nil
}

// utcNow matches PostgreSQL's microsecond timestamp precision so values
// read back compare equal to what was written.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
