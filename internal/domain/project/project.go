// Package project defines the Project entity tracked on the board, its
// column status, and the draft a user submits to create one.
package project

import "fmt"

// Project is a unit of trackable work. ID is assigned by the store when the
// project is created and never changes; Status is the only field that may
// change afterwards.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
}

// AssignedLabel renders the people count the way a board card shows it,
// e.g. "1 person assigned" or "3 persons assigned".
func (p Project) AssignedLabel() string {
	if p.People == 1 {
		return "1 person assigned"
	}
	return fmt.Sprintf("%d persons assigned", p.People)
}

// Filter returns the projects whose status matches, in their original order.
// The result is a new slice; the input is not modified.
func Filter(projects []Project, status Status) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the project with the given ID.
func Find(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
