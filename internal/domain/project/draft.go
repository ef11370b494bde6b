package project

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

// Input bounds enforced on a draft before it reaches the store.
const (
	MinDescriptionLength = 5
	MinPeople            = 1
)

// Draft is the user-submitted form for a new project. The store trusts its
// inputs, so callers validate a Draft before handing its fields over.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// Normalized returns a copy with surrounding whitespace removed from the
// text fields.
func (d Draft) Normalized() Draft {
	return Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		People:      d.People,
	}
}

// Validate checks the three form rules: a title is present, the description
// is present and at least MinDescriptionLength characters, and at least
// MinPeople people are assigned. Whitespace-only text counts as missing.
// Returns a *domain.ValidationError keyed by JSON field name, or nil.
func (d Draft) Validate() error {
	n := d.Normalized()
	err := validation.ValidateStruct(&n,
		validation.Field(&n.Title, validation.Required),
		validation.Field(&n.Description,
			validation.Required,
			validation.RuneLength(MinDescriptionLength, 0),
		),
		validation.Field(&n.People, validation.Required, validation.Min(MinPeople)),
	)
	return toValidationError(err)
}

// toValidationError converts ozzo-validation's per-field error map into the
// domain's validation error. Non-field errors are returned unchanged.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		if fieldErr != nil {
			fields[field] = fieldErr.Error()
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
