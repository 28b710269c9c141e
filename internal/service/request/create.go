package request

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/material-tracker/internal/domain"
	"github.com/heartmarshall/material-tracker/pkg/ctxutil"
)

// Create stores a new material request. New requests always start in the
// Requested status. The requester is taken from the verified identity when
// present, then from the input, then falls back to Unknown. A missing
// request date defaults to today.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Request, error) {
	if err := in.Validate(); err != nil {
		return domain.Request{}, err
	}

	requestedBy := in.RequestedBy
	if email, ok := ctxutil.ViewerEmailFromCtx(ctx); ok {
		requestedBy = email
	}
	if requestedBy == "" {
		requestedBy = domain.UnknownRequester
	}

	requestDate := in.RequestDate
	if requestDate == "" {
		requestDate = s.now().Format("2006-01-02")
	}

	created, err := s.store.Create(ctx, domain.Request{
		PartName:    strings.TrimSpace(in.PartName),
		Size:        in.Size,
		Description: in.Description,
		RequestDate: requestDate,
		Status:      domain.StatusRequested,
		RequestedBy: requestedBy,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return domain.Request{}, fmt.Errorf("create request: %w", err)
	}

	s.log.InfoContext(ctx, "request created",
		slog.String("request_id", created.ID),
		slog.String("part_name", created.PartName),
		slog.String("requested_by", created.RequestedBy),
	)

	return created, nil
}
