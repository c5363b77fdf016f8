package mysql

import (
	"context"

	"medevac-case-service/internal/domain/district"
	"medevac-case-service/internal/domain/hospital"
	"medevac-case-service/internal/domain/user"

	"gorm.io/gorm"
)

// Reference-data repositories: hospitals, districts, users. Read paths only;
// the case workflow never mutates these tables.

type HospitalRepository struct{ db *gorm.DB }

func NewHospitalRepository(db *gorm.DB) *HospitalRepository { return &HospitalRepository{db: db} }

func (r *HospitalRepository) GetByID(ctx context.Context, id uint64) (*hospital.Hospital, error) {
	var out hospital.Hospital
	res := r.db.WithContext(ctx).Where("hospital_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, hospital.ErrNotFound)
	}
	return &out, nil
}

func (r *HospitalRepository) List(ctx context.Context) ([]hospital.Hospital, error) {
	var out []hospital.Hospital
	res := r.db.WithContext(ctx).Order("hospital_name").Find(&out)
	return out, translate(res.Error, hospital.ErrNotFound)
}

func (r *HospitalRepository) ListByDistrictID(ctx context.Context, districtID uint64) ([]hospital.Hospital, error) {
	var out []hospital.Hospital
	res := r.db.WithContext(ctx).Where("district_id = ?", districtID).Order("hospital_name").Find(&out)
	return out, translate(res.Error, hospital.ErrNotFound)
}

type DistrictRepository struct{ db *gorm.DB }

func NewDistrictRepository(db *gorm.DB) *DistrictRepository { return &DistrictRepository{db: db} }

func (r *DistrictRepository) GetByID(ctx context.Context, id uint64) (*district.District, error) {
	var out district.District
	res := r.db.WithContext(ctx).Where("district_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, district.ErrNotFound)
	}
	return &out, nil
}

func (r *DistrictRepository) List(ctx context.Context) ([]district.District, error) {
	var out []district.District
	res := r.db.WithContext(ctx).Order("district_name").Find(&out)
	return out, translate(res.Error, district.ErrNotFound)
}

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*user.User, error) {
	var out user.User
	res := r.db.WithContext(ctx).Where("user_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, user.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	res := r.db.WithContext(ctx).Order("user_id").Find(&out)
	return out, translate(res.Error, user.ErrNotFound)
}
