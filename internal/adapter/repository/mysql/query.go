package mysql

import (
	"context"

	domain "medevac-case-service/internal/domain/query"
	"medevac-case-service/pkg/code"

	"gorm.io/gorm"
)

type QueryRepository struct{ db *gorm.DB }

func NewQueryRepository(db *gorm.DB) *QueryRepository { return &QueryRepository{db: db} }

// Create inserts under a placeholder code and finalizes it from the assigned
// id in the same transaction, mirroring the enquiry code flow.
func (r *QueryRepository) Create(ctx context.Context, q *domain.CaseQuery) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if q.QueryCode == "" {
			q.QueryCode = code.Placeholder(code.QueryPrefix)
		}
		if err := tx.Create(q).Error; err != nil {
			return translate(err, domain.ErrNotFound)
		}
		final := code.Format(code.QueryPrefix, q.ID)
		if err := tx.Model(&domain.CaseQuery{}).Where("query_id = ?", q.ID).
			Update("query_code", final).Error; err != nil {
			return translate(err, domain.ErrNotFound)
		}
		q.QueryCode = final
		return nil
	})
}

func (r *QueryRepository) GetByID(ctx context.Context, id uint64) (*domain.CaseQuery, error) {
	var out domain.CaseQuery
	res := r.db.WithContext(ctx).Where("query_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *QueryRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.CaseQuery, error) {
	q := r.db.WithContext(ctx).Model(&domain.CaseQuery{})
	if f.EnquiryID != 0 {
		q = q.Where("case_queries.enquiry_id = ?", f.EnquiryID)
	}
	if f.SubmitterID != 0 {
		q = q.Joins("JOIN enquiries ON enquiries.enquiry_id = case_queries.enquiry_id").
			Where("enquiries.submitted_by_user_id = ?", f.SubmitterID)
	}
	var out []domain.CaseQuery
	res := q.Order("case_queries.created_at DESC, case_queries.query_id DESC").Find(&out)
	return out, translate(res.Error, domain.ErrNotFound)
}

func (r *QueryRepository) Save(ctx context.Context, q *domain.CaseQuery) error {
	return translate(r.db.WithContext(ctx).Save(q).Error, domain.ErrNotFound)
}

func (r *QueryRepository) DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error {
	return translate(r.db.WithContext(ctx).Where("enquiry_id = ?", enquiryID).Delete(&domain.CaseQuery{}).Error, domain.ErrNotFound)
}
