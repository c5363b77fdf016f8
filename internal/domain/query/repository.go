package query

import "context"

// ListFilter narrows List results. SubmitterID restricts to queries whose
// parent enquiry was submitted by that user (CMO visibility rule).
type ListFilter struct {
	EnquiryID   uint64
	SubmitterID uint64
}

type Repository interface {
	// Create inserts the row and finalizes the query code from the assigned
	// numeric id, both inside one transaction.
	Create(ctx context.Context, q *CaseQuery) error
	GetByID(ctx context.Context, id uint64) (*CaseQuery, error)
	List(ctx context.Context, f ListFilter) ([]CaseQuery, error)
	Save(ctx context.Context, q *CaseQuery) error
	DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error
}
