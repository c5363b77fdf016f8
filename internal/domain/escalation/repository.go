package escalation

import "context"

type Repository interface {
	Create(ctx context.Context, e *CaseEscalation) error
	GetByID(ctx context.Context, id uint64) (*CaseEscalation, error)
	List(ctx context.Context) ([]CaseEscalation, error)
	CountByEnquiryID(ctx context.Context, enquiryID uint64, excludeID uint64) (int64, error)
	Save(ctx context.Context, e *CaseEscalation) error
	Delete(ctx context.Context, id uint64) error
	DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error
}
