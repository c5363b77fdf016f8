package mysql

import (
	"context"

	domain "medevac-case-service/internal/domain/closure"

	"gorm.io/gorm"
)

type ClosureRepository struct{ db *gorm.DB }

func NewClosureRepository(db *gorm.DB) *ClosureRepository { return &ClosureRepository{db: db} }

func (r *ClosureRepository) Create(ctx context.Context, c *domain.CaseClosure) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, domain.ErrNotFound)
}

func (r *ClosureRepository) GetByID(ctx context.Context, id uint64) (*domain.CaseClosure, error) {
	var out domain.CaseClosure
	res := r.db.WithContext(ctx).Where("closure_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *ClosureRepository) List(ctx context.Context) ([]domain.CaseClosure, error) {
	var out []domain.CaseClosure
	res := r.db.WithContext(ctx).Order("created_at DESC, closure_id DESC").Find(&out)
	return out, translate(res.Error, domain.ErrNotFound)
}

func (r *ClosureRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.CaseClosure, error) {
	var out []domain.CaseClosure
	res := r.db.WithContext(ctx).
		Where("closure_status = ?", status).
		Order("created_at DESC, closure_id DESC").
		Find(&out)
	return out, translate(res.Error, domain.ErrNotFound)
}

func (r *ClosureRepository) Save(ctx context.Context, c *domain.CaseClosure) error {
	return translate(r.db.WithContext(ctx).Save(c).Error, domain.ErrNotFound)
}
