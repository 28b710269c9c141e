// Package request implements the material request lifecycle use cases.
package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/material-tracker/internal/domain"
)

// recordStore is the persistence the service needs from the record store.
type recordStore interface {
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
	Get(ctx context.Context, id string) (domain.Request, error)
	Create(ctx context.Context, request domain.Request) (domain.Request, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Request, error)
}

// Service orchestrates request listing, creation and status updates.
type Service struct {
	log   *slog.Logger
	store recordStore
	now   func() time.Time
}

// NewService creates a request service.
func NewService(logger *slog.Logger, store recordStore) *Service {
	return &Service{
		log:   logger.With("service", "request"),
		store: store,
		now:   time.Now,
	}
}
