package board

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// healthPollInterval is how often HealthCheck retries the operation lock.
const healthPollInterval = 5 * time.Millisecond

// Name identifies the store in readiness output.
func (s *Store) Name() string { return "board-store" }

// HealthCheck reports the store unavailable when a mutation holds the
// operation lock past ctx's deadline, which happens when a listener blocks.
func (s *Store) HealthCheck(ctx context.Context) error {
	ticker := time.NewTicker(healthPollInterval)
	defer ticker.Stop()

	for {
		if s.opMu.TryLock() {
			s.opMu.Unlock()
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: board store busy: %w", domain.ErrUnavailable, ctx.Err())
		case <-ticker.C:
		}
	}
}
