package hospital

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Hospital, error)
	List(ctx context.Context) ([]Hospital, error)
	ListByDistrictID(ctx context.Context, districtID uint64) ([]Hospital, error)
}
