// Package handlers provides HTTP request handlers for the board's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// ProjectHandler handles the project form and direct column moves.
type ProjectHandler struct {
	svc ports.BoardService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.BoardService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects[?status=active|finished].
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	status, err := queryStatus(r, "status")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects, the project form submit.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+created.ID)
	writeJSON(w, http.StatusCreated, dto.ToProjectResponse(created))
}

// MoveProject handles PUT /api/v1/projects/{id}/status. Unknown projects and
// moves into the current column succeed without changing anything.
func (h *ProjectHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	status, err := req.Validate()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.MoveProject(r.Context(), id, status); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
