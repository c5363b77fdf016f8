package mysql

import (
	"context"

	domain "medevac-case-service/internal/domain/escalation"

	"gorm.io/gorm"
)

type EscalationRepository struct{ db *gorm.DB }

func NewEscalationRepository(db *gorm.DB) *EscalationRepository {
	return &EscalationRepository{db: db}
}

func (r *EscalationRepository) Create(ctx context.Context, e *domain.CaseEscalation) error {
	return translate(r.db.WithContext(ctx).Create(e).Error, domain.ErrNotFound)
}

func (r *EscalationRepository) GetByID(ctx context.Context, id uint64) (*domain.CaseEscalation, error) {
	var out domain.CaseEscalation
	res := r.db.WithContext(ctx).Where("escalation_id = ?", id).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *EscalationRepository) List(ctx context.Context) ([]domain.CaseEscalation, error) {
	var out []domain.CaseEscalation
	res := r.db.WithContext(ctx).Order("created_at DESC, escalation_id DESC").Find(&out)
	return out, translate(res.Error, domain.ErrNotFound)
}

func (r *EscalationRepository) CountByEnquiryID(ctx context.Context, enquiryID uint64, excludeID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&domain.CaseEscalation{}).
		Where("enquiry_id = ? AND escalation_id <> ?", enquiryID, excludeID).
		Count(&n)
	return n, translate(res.Error, domain.ErrNotFound)
}

func (r *EscalationRepository) Save(ctx context.Context, e *domain.CaseEscalation) error {
	return translate(r.db.WithContext(ctx).Save(e).Error, domain.ErrNotFound)
}

func (r *EscalationRepository) Delete(ctx context.Context, id uint64) error {
	return translate(r.db.WithContext(ctx).Where("escalation_id = ?", id).Delete(&domain.CaseEscalation{}).Error, domain.ErrNotFound)
}

func (r *EscalationRepository) DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error {
	return translate(r.db.WithContext(ctx).Where("enquiry_id = ?", enquiryID).Delete(&domain.CaseEscalation{}).Error, domain.ErrNotFound)
}
