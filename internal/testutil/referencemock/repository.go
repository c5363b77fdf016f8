package referencemock

import (
	"context"

	"medevac-case-service/internal/domain/district"
	"medevac-case-service/internal/domain/hospital"
	"medevac-case-service/internal/domain/user"
)

// Function-backed mocks for the reference-data repositories.

type HospitalRepo struct {
	GetByIDFn          func(ctx context.Context, id uint64) (*hospital.Hospital, error)
	ListFn             func(ctx context.Context) ([]hospital.Hospital, error)
	ListByDistrictIDFn func(ctx context.Context, districtID uint64) ([]hospital.Hospital, error)
}

func (m *HospitalRepo) GetByID(ctx context.Context, id uint64) (*hospital.Hospital, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, hospital.ErrNotFound
}

func (m *HospitalRepo) List(ctx context.Context) ([]hospital.Hospital, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *HospitalRepo) ListByDistrictID(ctx context.Context, districtID uint64) ([]hospital.Hospital, error) {
	if m.ListByDistrictIDFn != nil {
		return m.ListByDistrictIDFn(ctx, districtID)
	}
	return nil, nil
}

type DistrictRepo struct {
	GetByIDFn func(ctx context.Context, id uint64) (*district.District, error)
	ListFn    func(ctx context.Context) ([]district.District, error)
}

func (m *DistrictRepo) GetByID(ctx context.Context, id uint64) (*district.District, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, district.ErrNotFound
}

func (m *DistrictRepo) List(ctx context.Context) ([]district.District, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

type UserRepo struct {
	GetByIDFn func(ctx context.Context, id uint64) (*user.User, error)
	ListFn    func(ctx context.Context) ([]user.User, error)
}

func (m *UserRepo) GetByID(ctx context.Context, id uint64) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, user.ErrNotFound
}

func (m *UserRepo) List(ctx context.Context) ([]user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
