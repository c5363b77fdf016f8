package enquiry

import "context"

type Repository interface {
	// Create inserts the row and finalizes the enquiry code from the
	// assigned numeric id, both inside one transaction.
	Create(ctx context.Context, e *Enquiry) error
	GetByID(ctx context.Context, id uint64) (*Enquiry, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Enquiry, error)
	List(ctx context.Context) ([]Enquiry, error)
	ListBySubmitter(ctx context.Context, userID uint64) ([]Enquiry, error)
	Save(ctx context.Context, e *Enquiry) error
	Delete(ctx context.Context, id uint64) error
}
