package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/material-tracker/internal/domain"
)

// List returns requests sorted by request date, newest first, optionally
// narrowed to a single status.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Request, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var filter domain.RequestFilter
	if in.Status != "" {
		status := domain.Status(in.Status)
		filter.Status = &status
	}

	requests, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	s.log.DebugContext(ctx, "requests listed",
		slog.Int("count", len(requests)),
		slog.String("status_filter", in.Status),
	)

	return requests, nil
}
