package escalationmock

import (
	"context"

	domain "medevac-case-service/internal/domain/escalation"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, e *domain.CaseEscalation) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.CaseEscalation, error)
	ListFn              func(ctx context.Context) ([]domain.CaseEscalation, error)
	CountByEnquiryIDFn  func(ctx context.Context, enquiryID, excludeID uint64) (int64, error)
	SaveFn              func(ctx context.Context, e *domain.CaseEscalation) error
	DeleteFn            func(ctx context.Context, id uint64) error
	DeleteByEnquiryIDFn func(ctx context.Context, enquiryID uint64) error
}

func (m *Repo) Create(ctx context.Context, e *domain.CaseEscalation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.CaseEscalation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.CaseEscalation, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountByEnquiryID(ctx context.Context, enquiryID, excludeID uint64) (int64, error) {
	if m.CountByEnquiryIDFn != nil {
		return m.CountByEnquiryIDFn(ctx, enquiryID, excludeID)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, e *domain.CaseEscalation) error {
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

func (m *Repo) DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error {
	if m.DeleteByEnquiryIDFn != nil {
		return m.DeleteByEnquiryIDFn(ctx, enquiryID)
	}
	return nil
}
