package airtable

import (
	"github.com/heartmarshall/material-tracker/internal/domain"
)

// Airtable field names for the requests table. The table schema predates
// this service, so the names carry spaces and mixed case.
const (
	fieldPartName    = "Part name"
	fieldSize        = "Size"
	fieldDescription = "Description"
	fieldRequestDate = "Date of request"
	fieldStatus      = "Status"
	fieldRequestedBy = "Requested by"
	fieldImage       = "Image"
)

// attachment is a single entry of an Airtable attachment field.
type attachment struct {
	URL string `json:"url"`
}

// recordFields mirrors the requests table columns. Empty fields are omitted
// on write so Airtable keeps cells blank instead of storing empty strings.
type recordFields struct {
	PartName    string       `json:"Part name,omitempty"`
	Size        string       `json:"Size,omitempty"`
	Description string       `json:"Description,omitempty"`
	RequestDate string       `json:"Date of request,omitempty"`
	Status      string       `json:"Status,omitempty"`
	RequestedBy string       `json:"Requested by,omitempty"`
	Image       []attachment `json:"Image,omitempty"`
}

// record is a single Airtable record envelope.
type record struct {
	ID          string       `json:"id"`
	CreatedTime string       `json:"createdTime,omitempty"`
	Fields      recordFields `json:"fields"`
}

// listResponse is the envelope of a list records call.
type listResponse struct {
	Records []record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// createRequest is the body of a create record call.
type createRequest struct {
	Fields recordFields `json:"fields"`
}

// toFields maps a domain request onto Airtable columns.
func toFields(req domain.Request) recordFields {
	f := recordFields{
		PartName:    req.PartName,
		Size:        req.Size,
		Description: req.Description,
		RequestDate: req.RequestDate,
		Status:      string(req.Status),
		RequestedBy: req.RequestedBy,
	}
	if req.ImageURL != "" {
		f.Image = []attachment{{URL: req.ImageURL}}
	}
	return f
}

// fromRecord maps an Airtable record back to a domain request, filling the
// defaults the table allows to be blank.
func fromRecord(rec record) domain.Request {
	req := domain.Request{
		ID:          rec.ID,
		PartName:    rec.Fields.PartName,
		Size:        rec.Fields.Size,
		Description: rec.Fields.Description,
		RequestDate: rec.Fields.RequestDate,
		Status:      domain.Status(rec.Fields.Status),
		RequestedBy: rec.Fields.RequestedBy,
	}

	if req.Status == "" {
		req.Status = domain.StatusRequested
	}
	if req.RequestedBy == "" {
		req.RequestedBy = domain.UnknownRequester
	}
	if req.RequestDate == "" {
		req.RequestDate = rec.CreatedTime
	}
	if len(rec.Fields.Image) > 0 {
		req.ImageURL = rec.Fields.Image[0].URL
	}

	return req
}
