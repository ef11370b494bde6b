// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/domain/transfer"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ProjectResponse represents a single project card.
type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Assigned    string `json:"assigned"`
	Status      string `json:"status"`
}

// ProjectListResponse is a list of project cards. It is also the data of
// every snapshot event on the board stream.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ColumnResponse is one column of the board with its heading.
type ColumnResponse struct {
	Status   string            `json:"status"`
	Title    string            `json:"title"`
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// BoardResponse is the whole board, columns in display order.
type BoardResponse struct {
	Columns []ColumnResponse `json:"columns"`
}

// TransferResponse is the payload a client carries from drag start to drop.
type TransferResponse struct {
	MediaType     string `json:"media_type"`
	Data          string `json:"data"`
	EffectAllowed string `json:"effect_allowed"`
}

// ToProjectResponse converts a domain Project to its card representation.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		Assigned:    p.AssignedLabel(),
		Status:      p.Status.String(),
	}
}

// ToProjectListResponse converts a snapshot to a list response. The
// projects field is never null.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := toProjectResponses(projects)
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// ToBoardResponse converts the board's columns, adding each heading.
func ToBoardResponse(b *ports.Board) BoardResponse {
	cols := make([]ColumnResponse, len(b.Columns))
	for i, c := range b.Columns {
		items := toProjectResponses(c.Projects)
		cols[i] = ColumnResponse{
			Status:   c.Status.String(),
			Title:    c.Status.ColumnTitle(),
			Projects: items,
			Count:    len(items),
		}
	}
	return BoardResponse{Columns: cols}
}

// ToTransferResponse converts a drag payload.
func ToTransferResponse(p *transfer.Payload) TransferResponse {
	return TransferResponse{
		MediaType:     p.MediaType,
		Data:          p.Data,
		EffectAllowed: p.EffectAllowed,
	}
}

func toProjectResponses(projects []project.Project) []ProjectResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return items
}
