package project_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status project.Status
		want   bool
	}{
		{name: "active is valid", status: project.StatusActive, want: true},
		{name: "finished is valid", status: project.StatusFinished, want: true},
		{name: "empty string is invalid", status: "", want: false},
		{name: "unknown value is invalid", status: "archived", want: false},
		{name: "case sensitive", status: "Active", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatus_ColumnTitle(t *testing.T) {
	t.Parallel()

	if got := project.StatusActive.ColumnTitle(); got != "ACTIVE PROJECTS" {
		t.Errorf("ColumnTitle() = %q, want %q", got, "ACTIVE PROJECTS")
	}
	if got := project.StatusFinished.ColumnTitle(); got != "FINISHED PROJECTS" {
		t.Errorf("ColumnTitle() = %q, want %q", got, "FINISHED PROJECTS")
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    project.Status
		wantErr bool
	}{
		{raw: "active", want: project.StatusActive},
		{raw: "FINISHED", want: project.StatusFinished},
		{raw: "  Active ", want: project.StatusActive},
		{raw: "", wantErr: true},
		{raw: "done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := project.ParseStatus(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("ParseStatus(%q) error = %v, want ErrValidation", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) error = %v, want nil", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestProject_AssignedLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		people int
		want   string
	}{
		{people: 1, want: "1 person assigned"},
		{people: 2, want: "2 persons assigned"},
		{people: 10, want: "10 persons assigned"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			p := project.Project{People: tt.people}
			if got := p.AssignedLabel(); got != tt.want {
				t.Errorf("AssignedLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	projects := []project.Project{
		{ID: "a", Status: project.StatusActive},
		{ID: "b", Status: project.StatusFinished},
		{ID: "c", Status: project.StatusActive},
	}

	active := project.Filter(projects, project.StatusActive)
	if len(active) != 2 || active[0].ID != "a" || active[1].ID != "c" {
		t.Errorf("Filter(active) = %+v, want [a c] in order", active)
	}

	finished := project.Filter(projects, project.StatusFinished)
	if len(finished) != 1 || finished[0].ID != "b" {
		t.Errorf("Filter(finished) = %+v, want [b]", finished)
	}

	empty := project.Filter(nil, project.StatusActive)
	if empty == nil || len(empty) != 0 {
		t.Errorf("Filter(nil) = %v, want empty non-nil slice", empty)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	projects := []project.Project{{ID: "a"}, {ID: "b", Title: "second"}}

	got, ok := project.Find(projects, "b")
	if !ok || got.Title != "second" {
		t.Errorf("Find(b) = (%+v, %v), want second project", got, ok)
	}
	if _, ok := project.Find(projects, "missing"); ok {
		t.Error("Find(missing) ok = true, want false")
	}
}
