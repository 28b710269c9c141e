package rest

import (
	"time"

	"github.com/heartmarshall/material-tracker/internal/domain"
)

// requestResponse is the wire shape of a material request, enriched with
// the presentation hints the browser client renders directly.
type requestResponse struct {
	ID              string   `json:"id"`
	PartName        string   `json:"partName"`
	Size            string   `json:"size"`
	Description     string   `json:"description"`
	RequestDate     string   `json:"requestDate"`
	RequestDateText string   `json:"requestDateText"`
	Status          string   `json:"status"`
	StatusClass     string   `json:"statusClass"`
	NextStatuses    []string `json:"nextStatuses"`
	RequestedBy     string   `json:"requestedBy"`
	ImageURL        string   `json:"imageUrl"`
	CanUpdateStatus bool     `json:"canUpdateStatus"`
}

// statusClasses maps lifecycle statuses to the CSS class the client applies
// to the status badge.
var statusClasses = map[domain.Status]string{
	domain.StatusRequested: "status-requested",
	domain.StatusOrdered:   "status-ordered",
	domain.StatusInStock:   "status-in-stock",
}

func toRequestResponse(req domain.Request, viewerEmail string) requestResponse {
	next := domain.NextStatuses(req.Status)
	nextStatuses := make([]string, 0, len(next))
	for _, s := range next {
		nextStatuses = append(nextStatuses, s.String())
	}

	return requestResponse{
		ID:              req.ID,
		PartName:        req.PartName,
		Size:            req.Size,
		Description:     req.Description,
		RequestDate:     req.RequestDate,
		RequestDateText: formatRequestDate(req.RequestDate),
		Status:          req.Status.String(),
		StatusClass:     statusClasses[req.Status],
		NextStatuses:    nextStatuses,
		RequestedBy:     req.RequestedBy,
		ImageURL:        req.ImageURL,
		CanUpdateStatus: domain.RoleFromEmail(viewerEmail).IsManager(),
	}
}

func toRequestResponses(requests []domain.Request, viewerEmail string) []requestResponse {
	out := make([]requestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, toRequestResponse(req, viewerEmail))
	}
	return out
}

// formatRequestDate renders a request date as "2 Jan 2006". Dates come from
// the record store either as plain dates or as record creation timestamps;
// anything unparseable is shown as-is.
func formatRequestDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2 Jan 2006")
		}
	}
	return raw
}
