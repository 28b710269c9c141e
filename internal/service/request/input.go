package request

import (
	"strings"

	"github.com/heartmarshall/material-tracker/internal/domain"
)

// ListInput carries the optional narrowing of a list call.
type ListInput struct {
	// Status filters the listing to a single lifecycle status when non-empty.
	Status string
	// ViewerEmail is the email the caller claims; a verified identity in the
	// context takes precedence over it.
	ViewerEmail string
}

// Validate checks the list input.
func (in ListInput) Validate() error {
	var fields []domain.FieldError
	if in.Status != "" && !domain.Status(in.Status).IsValid() {
		fields = append(fields, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// CreateInput carries the fields of a new material request. Status is not
// accepted from the caller: new requests always start as Requested.
type CreateInput struct {
	PartName    string
	Size        string
	Description string
	RequestDate string
	RequestedBy string
	ImageURL    string
}

// Validate checks the create input. Only the part name is required; the
// remaining fields default during creation. Whitespace-only part names do
// not count.
func (in CreateInput) Validate() error {
	var fields []domain.FieldError
	if strings.TrimSpace(in.PartName) == "" {
		fields = append(fields, domain.FieldError{Field: "partName", Message: "is required"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// UpdateStatusInput identifies a request and the status to move it to.
type UpdateStatusInput struct {
	ID     string
	Status string
}

// Validate checks the update input.
func (in UpdateStatusInput) Validate() error {
	var fields []domain.FieldError
	if in.ID == "" {
		fields = append(fields, domain.FieldError{Field: "id", Message: "is required"})
	}
	if in.Status == "" {
		fields = append(fields, domain.FieldError{Field: "status", Message: "is required"})
	} else if !domain.Status(in.Status).IsValid() {
		fields = append(fields, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}
