// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/project-board/internal/app/board"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/domain/transfer"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService on top of the board store. It
// validates form input before it reaches the store, logs each use case and
// records board metrics. The store itself stays free of validation and I/O.
type BoardService struct {
	store   *board.Store
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewBoardService creates a BoardService over the given store. If metrics is
// nil, metric recording is skipped; a nil logger discards output.
func NewBoardService(store *board.Store, metrics *telemetry.Metrics, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// ListProjects returns the current projects, optionally limited to one column.
func (s *BoardService) ListProjects(ctx context.Context, status *project.Status) ([]project.Project, error) {
	projects := s.store.Projects()
	if status == nil {
		s.logger.DebugContext(ctx, "listing projects", slog.Int("count", len(projects)))
		return projects, nil
	}

	if !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", *status))
	}

	filtered := project.Filter(projects, *status)
	s.logger.DebugContext(ctx, "listing projects",
		slog.String("status", status.String()),
		slog.Int("count", len(filtered)),
	)
	return filtered, nil
}

// Board returns one consistent snapshot split into the board's columns.
func (s *BoardService) Board(ctx context.Context) (*ports.Board, error) {
	projects := s.store.Projects()

	b := &ports.Board{Columns: make([]ports.Column, 0, len(project.Statuses))}
	for _, status := range project.Statuses {
		b.Columns = append(b.Columns, ports.Column{
			Status:   status,
			Projects: project.Filter(projects, status),
		})
	}

	s.logger.DebugContext(ctx, "rendering board", slog.Int("count", len(projects)))
	return b, nil
}

// CreateProject validates the draft and adds it to the board as an active project.
func (s *BoardService) CreateProject(ctx context.Context, draft project.Draft) (*project.Project, error) {
	if err := draft.Validate(); err != nil {
		s.logger.InfoContext(ctx, "rejected project draft",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	d := draft.Normalized()
	created := s.store.AddProject(d.Title, d.Description, d.People)

	s.logger.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID),
		slog.String("title", created.Title),
		slog.Int("people", created.People),
	)
	if s.metrics != nil {
		s.metrics.ProjectsCreated.Add(ctx, 1)
	}

	return &created, nil
}

// MoveProject moves a project into the given column. Unknown IDs and moves
// into the project's current column change nothing and are not errors.
func (s *BoardService) MoveProject(ctx context.Context, id string, status project.Status) error {
	if !status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("invalid: %q", status))
	}

	if !s.store.MoveProject(id, status) {
		s.logger.DebugContext(ctx, "move ignored",
			slog.String("project_id", id),
			slog.String("status", status.String()),
		)
		return nil
	}

	s.logger.InfoContext(ctx, "project moved",
		slog.String("project_id", id),
		slog.String("status", status.String()),
	)
	if s.metrics != nil {
		s.metrics.ProjectsMoved.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrProjectStatus.String(status.String()),
		))
	}
	return nil
}

// StartTransfer begins dragging the project with the given ID.
func (s *BoardService) StartTransfer(ctx context.Context, id string) (*transfer.Payload, error) {
	if _, ok := project.Find(s.store.Projects(), id); !ok {
		s.logger.InfoContext(ctx, "drag of unknown project",
			slog.String("operation", "StartTransfer"),
			slog.String("project_id", id),
		)
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}

	payload := transfer.Start(id)
	s.logger.DebugContext(ctx, "transfer started", slog.String("project_id", id))
	return &payload, nil
}

// Drop completes a transfer onto column and applies the resulting move.
func (s *BoardService) Drop(ctx context.Context, payload transfer.Payload, column project.Status) error {
	move, err := transfer.Complete(payload, column)
	if err != nil {
		s.logger.InfoContext(ctx, "rejected drop",
			slog.String("operation", "Drop"),
			slog.String("column", column.String()),
			slog.Any("error", err),
		)
		return err
	}

	return s.MoveProject(ctx, move.ProjectID, move.To)
}

// Subscribe registers fn for every future board change. The returned
// function cancels the subscription and may be called more than once.
func (s *BoardService) Subscribe(ctx context.Context, fn func([]project.Project)) func() {
	sub := s.store.Subscribe(func(projects []project.Project) {
		if s.metrics != nil {
			s.metrics.BoardNotifications.Add(context.Background(), 1)
		}
		fn(projects)
	})
	if s.metrics != nil {
		s.metrics.BoardSubscribers.Add(ctx, 1)
	}
	s.logger.DebugContext(ctx, "board subscription added", slog.Int("subscribers", s.store.Subscribers()))

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.Cancel()
			if s.metrics != nil {
				s.metrics.BoardSubscribers.Add(context.Background(), -1)
			}
		})
	}
}
