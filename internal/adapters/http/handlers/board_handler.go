package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

// BoardHandler renders the board and drives drag-and-drop between columns.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// Board handles GET /api/v1/board.
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Board(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(b))
}

// StartDrag handles POST /api/v1/projects/{id}/drag and returns the payload
// the client carries until it drops the card.
func (h *BoardHandler) StartDrag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	payload, err := h.svc.StartTransfer(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransferResponse(payload))
}

// Drop handles POST /api/v1/columns/{status}/drop. Any text payload is
// accepted; a payload naming no known project changes nothing.
func (h *BoardHandler) Drop(w http.ResponseWriter, r *http.Request) {
	column, err := pathStatus(r, "status")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.DropRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.svc.Drop(r.Context(), req.ToPayload(), column); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
