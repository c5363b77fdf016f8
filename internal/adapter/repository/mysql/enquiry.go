package mysql

import (
	"context"

	domain "medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/pkg/code"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnquiryRepository struct{ db *gorm.DB }

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository { return &EnquiryRepository{db: db} }

// Create inserts the row under a placeholder code, then rewrites the code
// from the assigned id, all in one transaction.
func (r *EnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if e.EnquiryCode == "" {
			e.EnquiryCode = code.Placeholder(code.EnquiryPrefix)
		}
		if err := tx.Create(e).Error; err != nil {
			return translate(err, domain.ErrNotFound)
		}
		final := code.Format(code.EnquiryPrefix, e.ID)
		if err := tx.Model(&domain.Enquiry{}).Where("enquiry_id = ?", e.ID).
			Update("enquiry_code", final).Error; err != nil {
			return translate(err, domain.ErrNotFound)
		}
		e.EnquiryCode = final
		return nil
	})
}

func (r *EnquiryRepository) GetByID(ctx context.Context, id uint64) (*domain.Enquiry, error) {
	var out domain.Enquiry
	res := r.db.WithContext(ctx).Where("enquiry_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *EnquiryRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Enquiry, error) {
	q := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out domain.Enquiry
	res := q.Where("enquiry_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *EnquiryRepository) List(ctx context.Context) ([]domain.Enquiry, error) {
	var out []domain.Enquiry
	res := r.db.WithContext(ctx).
		Order("created_at DESC, enquiry_id DESC").
		Find(&out)
	return out, translate(res.Error, domain.ErrNotFound)
}

func (r *EnquiryRepository) ListBySubmitter(ctx context.Context, userID uint64) ([]domain.Enquiry, error) {
	var out []domain.Enquiry
	res := r.db.WithContext(ctx).
		Where("submitted_by_user_id = ?", userID).
		Order("created_at DESC, enquiry_id DESC").
		Find(&out)
	return out, translate(res.Error, domain.ErrNotFound)
}

func (r *EnquiryRepository) Save(ctx context.Context, e *domain.Enquiry) error {
	return translate(r.db.WithContext(ctx).Save(e).Error, domain.ErrNotFound)
}

func (r *EnquiryRepository) Delete(ctx context.Context, id uint64) error {
	return translate(r.db.WithContext(ctx).Where("enquiry_id = ?", id).Delete(&domain.Enquiry{}).Error, domain.ErrNotFound)
}
