package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*User, error)
	List(ctx context.Context) ([]User, error)
}
