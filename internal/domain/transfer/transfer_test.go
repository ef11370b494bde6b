package transfer_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-board/internal/domain"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/domain/transfer"
)

func TestStart_CarriesOnlyTheID(t *testing.T) {
	t.Parallel()

	p := transfer.Start("proj-1")

	if p.MediaType != transfer.MediaTypeText {
		t.Errorf("MediaType = %q, want %q", p.MediaType, transfer.MediaTypeText)
	}
	if p.Data != "proj-1" {
		t.Errorf("Data = %q, want %q", p.Data, "proj-1")
	}
	if p.EffectAllowed != transfer.EffectMove {
		t.Errorf("EffectAllowed = %q, want %q", p.EffectAllowed, transfer.EffectMove)
	}
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mediaType string
		want      bool
	}{
		{mediaType: "text/plain", want: true},
		{mediaType: "application/json", want: false},
		{mediaType: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			t.Parallel()
			if got := transfer.Accepts(transfer.Payload{MediaType: tt.mediaType}); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.mediaType, got, tt.want)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	t.Run("round trip yields move", func(t *testing.T) {
		t.Parallel()

		move, err := transfer.Complete(transfer.Start("proj-1"), project.StatusFinished)
		if err != nil {
			t.Fatalf("Complete() error = %v, want nil", err)
		}
		if move.ProjectID != "proj-1" || move.To != project.StatusFinished {
			t.Errorf("Complete() = %+v, want {proj-1 finished}", move)
		}
	})

	t.Run("unknown id passes through", func(t *testing.T) {
		t.Parallel()

		move, err := transfer.Complete(transfer.Start("nonexistent-id"), project.StatusActive)
		if err != nil {
			t.Fatalf("Complete() error = %v, want nil", err)
		}
		if move.ProjectID != "nonexistent-id" {
			t.Errorf("ProjectID = %q, want %q", move.ProjectID, "nonexistent-id")
		}
	})

	t.Run("non-text payload rejected", func(t *testing.T) {
		t.Parallel()

		_, err := transfer.Complete(transfer.Payload{MediaType: "text/html", Data: "x"}, project.StatusActive)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Complete() error = %v, want ErrValidation", err)
		}
	})

	t.Run("invalid destination rejected", func(t *testing.T) {
		t.Parallel()

		_, err := transfer.Complete(transfer.Start("proj-1"), "archived")

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Complete() error = %v, want *ValidationError", err)
		}
		if _, ok := verr.Fields["status"]; !ok {
			t.Errorf("Fields = %v, want status key", verr.Fields)
		}
	})
}
