package closuremock

import (
	"context"

	domain "medevac-case-service/internal/domain/closure"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, c *domain.CaseClosure) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.CaseClosure, error)
	ListFn         func(ctx context.Context) ([]domain.CaseClosure, error)
	ListByStatusFn func(ctx context.Context, status domain.Status) ([]domain.CaseClosure, error)
	SaveFn         func(ctx context.Context, c *domain.CaseClosure) error
}

func (m *Repo) Create(ctx context.Context, c *domain.CaseClosure) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.CaseClosure, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.CaseClosure, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.CaseClosure, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.CaseClosure) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
