package mysql

import (
	"context"

	domain "medevac-case-service/internal/domain/document"
	"medevac-case-service/internal/domain/enquiry"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) CreateBatch(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Create(&docs).Error, enquiry.ErrNotFound)
}

func (r *DocumentRepository) ListByEnquiryID(ctx context.Context, enquiryID uint64) ([]domain.Document, error) {
	var out []domain.Document
	res := r.db.WithContext(ctx).Where("enquiry_id = ?", enquiryID).Order("document_id").Find(&out)
	return out, translate(res.Error, enquiry.ErrNotFound)
}

func (r *DocumentRepository) DeleteByEnquiryID(ctx context.Context, enquiryID uint64) error {
	return translate(r.db.WithContext(ctx).Where("enquiry_id = ?", enquiryID).Delete(&domain.Document{}).Error, enquiry.ErrNotFound)
}
