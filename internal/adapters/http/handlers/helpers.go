package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// pathID extracts a non-empty project ID path parameter. IDs are opaque, so
// no further format check is made.
func pathID(r *http.Request, param string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, param))
	if id == "" {
		return "", domain.NewValidationError("path."+param, "is required")
	}
	return id, nil
}

// pathStatus parses a column status path parameter.
func pathStatus(r *http.Request, param string) (project.Status, error) {
	s, err := project.ParseStatus(chi.URLParam(r, param))
	if err != nil {
		return "", domain.NewValidationError("path."+param, "must be one of: active, finished")
	}
	return s, nil
}

// queryStatus parses an optional status query parameter. It returns nil
// when the parameter is absent.
func queryStatus(r *http.Request, param string) (*project.Status, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, nil
	}
	s, err := project.ParseStatus(raw)
	if err != nil {
		return nil, domain.NewValidationError("query."+param, "must be one of: active, finished")
	}
	return &s, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body.
const maxJSONBodyBytes = 64 << 10

// decodeJSONBody decodes the request body as JSON into dst, rejecting
// unknown fields. The body is limited to maxJSONBodyBytes. On failure it
// writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}
