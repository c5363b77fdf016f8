package closure

import "context"

type Repository interface {
	Create(ctx context.Context, c *CaseClosure) error
	GetByID(ctx context.Context, id uint64) (*CaseClosure, error)
	List(ctx context.Context) ([]CaseClosure, error)
	ListByStatus(ctx context.Context, status Status) ([]CaseClosure, error)
	Save(ctx context.Context, c *CaseClosure) error
}
