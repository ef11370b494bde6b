package dto

import (
	"strings"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/domain/transfer"
)

// CreateProjectRequest is the JSON body of the new-project form.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// ToDraft converts the request into a draft for validation and creation.
func (r *CreateProjectRequest) ToDraft() project.Draft {
	return project.Draft{
		Title:       r.Title,
		Description: r.Description,
		People:      r.People,
	}
}

// MoveProjectRequest is the JSON body for moving a project between columns.
type MoveProjectRequest struct {
	Status string `json:"status"`
}

// Validate parses the requested column.
// Returns a *domain.ValidationError if it is not a known status.
func (r *MoveProjectRequest) Validate() (project.Status, error) {
	return project.ParseStatus(r.Status)
}

// DropRequest is the JSON body of a drop onto a column: the payload that
// was carried across the drag.
type DropRequest struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// ToPayload converts the request into a transfer payload. The media type is
// normalized; the data is passed through untouched.
func (r *DropRequest) ToPayload() transfer.Payload {
	return transfer.Payload{
		MediaType: strings.ToLower(strings.TrimSpace(r.MediaType)),
		Data:      r.Data,
	}
}
