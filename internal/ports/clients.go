package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// SnapshotPublisher defines the client port for mirroring board snapshots to
// an external system. Implemented by the webhook adapter.
type SnapshotPublisher interface {
	// Publish delivers one full snapshot of the board. Returns
	// domain.ErrUnavailable when a target cannot be reached and
	// domain.ErrValidation when a target rejects the payload.
	Publish(ctx context.Context, snapshot []project.Project) error
}
