package documentmock

import (
	"context"

	domain "medevac-case-service/internal/domain/document"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn       func(ctx context.Context, docs []domain.Document) error
	ListByEnquiryIDFn   func(ctx context.Context, enquiryID uint64) ([]domain.Document, error)
	DeleteByEnquiryIDFn func(ctx context.Context, enquiryID uint64) error
}

func (m *Repo) CreateBatch(ctx context.Context, docs []domain.Document) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, docs)
	}
	return nil
}

func (m *Repo) ListByEnquiryID(ctx context.Context, enquiryID uint64) ([]domain.Document, error) {
	if m.ListByEnquiryIDFn != nil {
		return m.ListByEnquiryIDFn(ctx, enquiryID)
	}
	return nil, nil
}

func (m *Repo) DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error {
	if m.DeleteByEnquiryIDFn != nil {
		return m.DeleteByEnquiryIDFn(ctx, enquiryID)
	}
	return nil
}
