package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/material-tracker/internal/domain"
	"github.com/heartmarshall/material-tracker/internal/service/image"
	"github.com/heartmarshall/material-tracker/internal/service/request"
)

// requestServiceMock is a hand-written mock of the requestService interface.
type requestServiceMock struct {
	ListFunc         func(ctx context.Context, in request.ListInput) ([]domain.Request, error)
	CreateFunc       func(ctx context.Context, in request.CreateInput) (domain.Request, error)
	UpdateStatusFunc func(ctx context.Context, in request.UpdateStatusInput) (domain.Request, error)

	calls struct {
		List []struct {
			Ctx context.Context
			In  request.ListInput
		}
		Create []struct {
			Ctx context.Context
			In  request.CreateInput
		}
		UpdateStatus []struct {
			Ctx context.Context
			In  request.UpdateStatusInput
		}
	}
	mu sync.RWMutex
}

func (m *requestServiceMock) List(ctx context.Context, in request.ListInput) ([]domain.Request, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, struct {
		Ctx context.Context
		In  request.ListInput
	}{ctx, in})
	m.mu.Unlock()
	return m.ListFunc(ctx, in)
}

func (m *requestServiceMock) Create(ctx context.Context, in request.CreateInput) (domain.Request, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct {
		Ctx context.Context
		In  request.CreateInput
	}{ctx, in})
	m.mu.Unlock()
	return m.CreateFunc(ctx, in)
}

func (m *requestServiceMock) UpdateStatus(ctx context.Context, in request.UpdateStatusInput) (domain.Request, error) {
	m.mu.Lock()
	m.calls.UpdateStatus = append(m.calls.UpdateStatus, struct {
		Ctx context.Context
		In  request.UpdateStatusInput
	}{ctx, in})
	m.mu.Unlock()
	return m.UpdateStatusFunc(ctx, in)
}

func (m *requestServiceMock) ListCalls() []struct {
	Ctx context.Context
	In  request.ListInput
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.List
}

func (m *requestServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  request.CreateInput
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Create
}

func (m *requestServiceMock) UpdateStatusCalls() []struct {
	Ctx context.Context
	In  request.UpdateStatusInput
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.UpdateStatus
}

// imageServiceMock is a hand-written mock of the imageService interface.
type imageServiceMock struct {
	IngestFunc func(ctx context.Context, in image.IngestInput) (string, error)

	calls struct {
		Ingest []struct {
			Ctx context.Context
			In  image.IngestInput
		}
	}
	mu sync.RWMutex
}

func (m *imageServiceMock) Ingest(ctx context.Context, in image.IngestInput) (string, error) {
	m.mu.Lock()
	m.calls.Ingest = append(m.calls.Ingest, struct {
		Ctx context.Context
		In  image.IngestInput
	}{ctx, in})
	m.mu.Unlock()
	return m.IngestFunc(ctx, in)
}

func (m *imageServiceMock) IngestCalls() []struct {
	Ctx context.Context
	In  image.IngestInput
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Ingest
}
