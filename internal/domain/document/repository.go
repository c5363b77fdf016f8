package document

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, docs []Document) error
	ListByEnquiryID(ctx context.Context, enquiryID uint64) ([]Document, error)
	DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error
}
