package uow

import (
	"context"

	"medevac-case-service/internal/domain/closure"
	"medevac-case-service/internal/domain/document"
	"medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/escalation"
	"medevac-case-service/internal/domain/query"
)

type Repos struct {
	Enquiries   enquiry.Repository
	Documents   document.Repository
	Escalations escalation.Repository
	Queries     query.Repository
	Closures    closure.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the enquiry row first, then pass it in
	WithinEnquiryTx(ctx context.Context, enquiryID uint64, fn func(r Repos, e *enquiry.Enquiry) error) error
}
