package request

import (
	"context"
	"sync"

	"github.com/heartmarshall/material-tracker/internal/domain"
)

// recordStoreMock is a hand-written mock of the recordStore interface.
type recordStoreMock struct {
	ListFunc         func(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
	GetFunc          func(ctx context.Context, id string) (domain.Request, error)
	CreateFunc       func(ctx context.Context, request domain.Request) (domain.Request, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.Status) (domain.Request, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.RequestFilter
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx     context.Context
			Request domain.Request
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     string
			Status domain.Status
		}
	}
	mu sync.RWMutex
}

func (m *recordStoreMock) List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, struct {
		Ctx    context.Context
		Filter domain.RequestFilter
	}{ctx, filter})
	m.mu.Unlock()
	return m.ListFunc(ctx, filter)
}

func (m *recordStoreMock) Get(ctx context.Context, id string) (domain.Request, error) {
	m.mu.Lock()
	m.calls.Get = append(m.calls.Get, struct {
		Ctx context.Context
		ID  string
	}{ctx, id})
	m.mu.Unlock()
	return m.GetFunc(ctx, id)
}

func (m *recordStoreMock) Create(ctx context.Context, request domain.Request) (domain.Request, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct {
		Ctx     context.Context
		Request domain.Request
	}{ctx, request})
	m.mu.Unlock()
	return m.CreateFunc(ctx, request)
}

func (m *recordStoreMock) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Request, error) {
	m.mu.Lock()
	m.calls.UpdateStatus = append(m.calls.UpdateStatus, struct {
		Ctx    context.Context
		ID     string
		Status domain.Status
	}{ctx, id, status})
	m.mu.Unlock()
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *recordStoreMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RequestFilter
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.List
}

func (m *recordStoreMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Get
}

func (m *recordStoreMock) CreateCalls() []struct {
	Ctx     context.Context
	Request domain.Request
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Create
}

func (m *recordStoreMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     string
	Status domain.Status
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.UpdateStatus
}
