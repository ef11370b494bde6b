package webhook

import (
	"time"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// snapshotEvent is the JSON body POSTed to every mirror.
type snapshotEvent struct {
	Event    string        `json:"event"`
	SentAt   time.Time     `json:"sent_at"`
	Count    int           `json:"count"`
	Projects []projectWire `json:"projects"`
}

type projectWire struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
}

const eventSnapshot = "board.snapshot"

func toSnapshotEvent(snapshot []project.Project, now time.Time) snapshotEvent {
	wire := make([]projectWire, len(snapshot))
	for i, p := range snapshot {
		wire[i] = projectWire{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			People:      p.People,
			Status:      p.Status.String(),
		}
	}
	return snapshotEvent{
		Event:    eventSnapshot,
		SentAt:   now.UTC(),
		Count:    len(wire),
		Projects: wire,
	}
}
