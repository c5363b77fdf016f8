package enquirymock

import (
	"context"

	domain "medevac-case-service/internal/domain/enquiry"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn           func(ctx context.Context, e *domain.Enquiry) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Enquiry, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Enquiry, error)
	ListFn             func(ctx context.Context) ([]domain.Enquiry, error)
	ListBySubmitterFn  func(ctx context.Context, userID uint64) ([]domain.Enquiry, error)
	SaveFn             func(ctx context.Context, e *domain.Enquiry) error
	DeleteFn           func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Enquiry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Enquiry, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Enquiry, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Enquiry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListBySubmitter(ctx context.Context, userID uint64) ([]domain.Enquiry, error) {
	if m.ListBySubmitterFn != nil {
		return m.ListBySubmitterFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Enquiry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
