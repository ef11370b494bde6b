package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Server-sent event names on the board stream.
const (
	eventInit     = "init"
	eventSnapshot = "snapshot"
)

// StreamHandler pushes board changes to browsers as server-sent events.
type StreamHandler struct {
	svc       ports.BoardService
	keepalive time.Duration
	buffer    int
	logger    *slog.Logger
}

// NewStreamHandler creates a StreamHandler. keepalive is the interval of
// comment lines that keep idle connections open; buffer is how many
// undelivered snapshots a slow client may fall behind before older ones
// are dropped.
func NewStreamHandler(svc ports.BoardService, keepalive time.Duration, buffer int, logger *slog.Logger) *StreamHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StreamHandler{
		svc:       svc,
		keepalive: keepalive,
		buffer:    max(buffer, 1),
		logger:    logger,
	}
}

// Events handles GET /api/v1/events.
//
// The stream opens with an "init" event holding the current projects, then
// sends one "snapshot" event with the full list after every change. The
// subscription is cancelled when the client disconnects.
func (h *StreamHandler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rc := http.NewResponseController(w)
	clientID := uuid.NewString()

	// Streams outlive the server's write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.logger.WarnContext(ctx, "clearing write deadline failed", slog.Any("error", err))
	}

	updates := make(chan []project.Project, h.buffer)
	cancel := h.svc.Subscribe(ctx, func(projects []project.Project) {
		offerLatest(updates, projects)
	})
	defer cancel()

	initial, err := h.svc.ListProjects(ctx, nil)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	h.logger.DebugContext(ctx, "board stream opened", slog.String("client_id", clientID))
	defer h.logger.DebugContext(ctx, "board stream closed", slog.String("client_id", clientID))

	var seq uint64
	if err := writeEvent(w, seq, eventInit, initial); err != nil || rc.Flush() != nil {
		return
	}

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case projects := <-updates:
			seq++
			if err := writeEvent(w, seq, eventSnapshot, projects); err != nil {
				h.logger.DebugContext(ctx, "board stream write failed",
					slog.String("client_id", clientID),
					slog.Any("error", err),
				)
				return
			}
		case <-ticker.C:
			if _, err := io.WriteString(w, ": keepalive\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

// offerLatest sends projects without blocking. When the buffer is full the
// oldest pending snapshot is discarded, since every snapshot is complete.
func offerLatest(ch chan []project.Project, projects []project.Project) {
	for {
		select {
		case ch <- projects:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func writeEvent(w io.Writer, id uint64, name string, projects []project.Project) error {
	data, err := json.Marshal(dto.ToProjectListResponse(projects))
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", name, err)
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", id, name, data)
	return err
}
