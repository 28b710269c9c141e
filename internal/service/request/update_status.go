package request

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/material-tracker/internal/domain"
)

// UpdateStatus moves a request to the given status and returns the updated
// request. Any valid status is accepted: the lifecycle order is advisory and
// managers occasionally correct records out of order. Moves that skip the
// usual progression are logged, not rejected.
func (s *Service) UpdateStatus(ctx context.Context, in UpdateStatusInput) (domain.Request, error) {
	if err := in.Validate(); err != nil {
		return domain.Request{}, err
	}

	current, err := s.store.Get(ctx, in.ID)
	if err != nil {
		return domain.Request{}, fmt.Errorf("update status: %w", err)
	}

	next := domain.Status(in.Status)
	if current.Status != next && !domain.CanTransition(current.Status, next) {
		s.log.WarnContext(ctx, "out-of-order status move",
			slog.String("request_id", in.ID),
			slog.String("from", string(current.Status)),
			slog.String("to", string(next)),
		)
	}

	updated, err := s.store.UpdateStatus(ctx, in.ID, next)
	if err != nil {
		return domain.Request{}, fmt.Errorf("update status: %w", err)
	}

	s.log.InfoContext(ctx, "request status updated",
		slog.String("request_id", updated.ID),
		slog.String("status", string(updated.Status)),
	)

	return updated, nil
}
