package ports

import (
	"context"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/domain/transfer"
)

// BoardService defines the service port for the project board.
// Implemented by the application layer; called by inbound adapters (handlers).
// All operations act on the single board store owned by the composition root.
type BoardService interface {
	// ListProjects returns the current projects in creation order. When
	// status is non-nil only the projects in that column are returned.
	ListProjects(ctx context.Context, status *project.Status) ([]project.Project, error)

	// Board returns the current projects grouped into their columns.
	Board(ctx context.Context) (*Board, error)

	// CreateProject validates the draft and adds an active project.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateProject(ctx context.Context, draft project.Draft) (*project.Project, error)

	// MoveProject moves a project into the given column. Unknown IDs and
	// moves into the current column are silent no-ops.
	// Returns domain.ErrValidation if status is not a known column.
	MoveProject(ctx context.Context, id string, status project.Status) error

	// StartTransfer begins dragging a project and returns the payload to
	// carry across the drag. Returns domain.ErrNotFound if the project does
	// not exist.
	StartTransfer(ctx context.Context, id string) (*transfer.Payload, error)

	// Drop completes a transfer onto the given column. A payload naming an
	// unknown project is a silent no-op.
	// Returns domain.ErrValidation for non-text payloads or unknown columns.
	Drop(ctx context.Context, payload transfer.Payload, column project.Status) error

	// Subscribe registers fn for every future change to the board. The
	// returned function cancels the subscription.
	Subscribe(ctx context.Context, fn func([]project.Project)) (cancel func())
}

// Column is one status column of the board.
type Column struct {
	Status   project.Status
	Projects []project.Project
}

// Board is the board split into its columns, in column order.
type Board struct {
	Columns []Column
}
