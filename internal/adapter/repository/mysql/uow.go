package mysql

import (
	"context"

	"medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Enquiries:   &EnquiryRepository{db: tx},
		Documents:   &DocumentRepository{db: tx},
		Escalations: &EscalationRepository{db: tx},
		Queries:     &QueryRepository{db: tx},
		Closures:    &ClosureRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinEnquiryTx(ctx context.Context, enquiryID uint64, fn func(r uow.Repos, e *enquiry.Enquiry) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the enquiry row up-front to prevent races
		e, err := r.Enquiries.GetByIDForUpdate(ctx, enquiryID)
		if err != nil {
			return err
		}
		return fn(r, e)
	})
}
