package querymock

import (
	"context"

	domain "medevac-case-service/internal/domain/query"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, q *domain.CaseQuery) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.CaseQuery, error)
	ListFn              func(ctx context.Context, f domain.ListFilter) ([]domain.CaseQuery, error)
	SaveFn              func(ctx context.Context, q *domain.CaseQuery) error
	DeleteByEnquiryIDFn func(ctx context.Context, enquiryID uint64) error
}

func (m *Repo) Create(ctx context.Context, q *domain.CaseQuery) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.CaseQuery, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.CaseQuery, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, q *domain.CaseQuery) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, q)
	}
	return nil
}

func (m *Repo) DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error {
	if m.DeleteByEnquiryIDFn != nil {
		return m.DeleteByEnquiryIDFn(ctx, enquiryID)
	}
	return nil
}
