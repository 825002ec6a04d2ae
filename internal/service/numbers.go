package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/easybank/easybank-services/internal/domain"
)

// existsFunc reports whether a candidate number is already assigned.
type existsFunc func(ctx context.Context, n int64) (bool, error)

// uniqueNumber draws candidates from gen until one is unused or
// maxAttempts is reached. A concurrent writer can still claim the number
// before it is inserted; the unique constraint catches that case.
func uniqueNumber(
	ctx context.Context,
	gen domain.NumberGenerator,
	maxAttempts int,
	exists existsFunc,
	log *slog.Logger,
) (int64, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		candidate := gen.Next()
		taken, err := exists(ctx, candidate)
		if err != nil {
			return 0, err
		}
		if !taken {
			return candidate, nil
		}

		log.Debug("generated number already assigned, retrying",
			slog.Int("attempt", attempt))
	}

	return 0, fmt.Errorf("%w after %d attempts", ErrNumberSpaceExhausted, maxAttempts)
}

func formatNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}
