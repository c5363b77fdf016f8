package district

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*District, error)
	List(ctx context.Context) ([]District, error)
}
