// Package transfer models a drag-and-drop operation on the board as a
// platform-neutral transfer: dragging a card starts a transfer whose payload
// is the project's ID as plain text, and dropping it on a column completes
// the transfer into a Move for the store.
//
// Only the identifier crosses the drag boundary. The store already holds the
// full project keyed by ID, so the receiving column never decodes project
// content from the payload.
package transfer

import (
	"fmt"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// MediaTypeText is the only payload type a column accepts.
const MediaTypeText = "text/plain"

// EffectMove is the drag effect advertised for board cards.
const EffectMove = "move"

// Payload is the data carried across a drag operation.
type Payload struct {
	MediaType     string
	Data          string
	EffectAllowed string
}

// Move is a completed transfer: move ProjectID into the To column.
type Move struct {
	ProjectID string
	To        project.Status
}

// Start begins a transfer for the given project.
func Start(projectID string) Payload {
	return Payload{
		MediaType:     MediaTypeText,
		Data:          projectID,
		EffectAllowed: EffectMove,
	}
}

// Accepts reports whether a column would accept the payload on drag over.
func Accepts(p Payload) bool {
	return p.MediaType == MediaTypeText
}

// Complete turns a dropped payload into a Move for the destination column.
// It fails only when the payload is not plain text or the destination is not
// a known status. The token itself is not checked against the board: an
// unknown ID is passed through and the store ignores it.
func Complete(p Payload, destination project.Status) (Move, error) {
	verr := new(domain.ValidationError)
	if !Accepts(p) {
		verr.Add("media_type", fmt.Sprintf("must be %q, got %q", MediaTypeText, p.MediaType))
	}
	if !destination.IsValid() {
		verr.Add("status", fmt.Sprintf("invalid: %q", destination))
	}
	if err := verr.OrNil(); err != nil {
		return Move{}, err
	}
	return Move{ProjectID: p.Data, To: destination}, nil
}
