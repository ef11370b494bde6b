package project

import (
	"strings"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// Status is the board column a project belongs to.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses lists every status in column order.
var Statuses = []Status{StatusActive, StatusFinished}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ColumnTitle is the heading shown above the status column, e.g. "ACTIVE PROJECTS".
func (s Status) ColumnTitle() string {
	return strings.ToUpper(string(s)) + " PROJECTS"
}

// ParseStatus converts user input into a Status. Matching is
// case-insensitive and ignores surrounding whitespace. Unknown values yield
// a *domain.ValidationError on the "status" field.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", domain.NewValidationError("status", "must be one of: active, finished")
	}
	return s, nil
}
