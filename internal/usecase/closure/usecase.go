package closure

import (
	"context"
	"fmt"
	"time"

	domain "medevac-case-service/internal/domain/closure"
	enquiryDomain "medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/uow"

	"go.uber.org/zap"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, uow: tx, log: log}
}

// Close records the closure and moves the enquiry to CLOSED, both inside one
// transaction.
func (u *Usecase) Close(ctx context.Context, in CloseInput) (*ClosureDTO, error) {
	if !in.ClosureReason.Valid() {
		return nil, &enquiryDomain.ValidationError{Field: "closure_reason", Message: fmt.Sprintf("invalid closure reason: %s", in.ClosureReason)}
	}
	if in.FinalRemarks == "" {
		return nil, &enquiryDomain.ValidationError{Field: "final_remarks", Message: "is required"}
	}
	if in.ClosedBy == 0 {
		return nil, &enquiryDomain.ValidationError{Field: "closed_by", Message: "is required"}
	}

	now := time.Now().UTC()
	c := &domain.CaseClosure{
		EnquiryID:          in.EnquiryID,
		ClosureReason:      in.ClosureReason,
		FinalRemarks:       in.FinalRemarks,
		DocumentsSubmitted: in.DocumentsSubmitted,
		PaymentCleared:     in.PaymentCleared,
		PatientFeedback:    in.PatientFeedback,
		ClosureNotes:       in.ClosureNotes,
		ClosureStatus:      domain.StatusClosed,
		ClosedBy:           in.ClosedBy,
		ClosureDate:        &now,
	}
	err := u.uow.WithinEnquiryTx(ctx, in.EnquiryID, func(r uow.Repos, e *enquiryDomain.Enquiry) error {
		if err := r.Closures.Create(ctx, c); err != nil {
			return err
		}
		e.Status = enquiryDomain.StatusClosed
		return r.Enquiries.Save(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("case closed",
		zap.Uint64("enquiry_id", in.EnquiryID),
		zap.String("closure_reason", string(in.ClosureReason)))
	return dto(c), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ClosureDTO, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]ClosureDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dtos(rows), nil
}

func (u *Usecase) ListByStatus(ctx context.Context, status domain.Status) ([]ClosureDTO, error) {
	rows, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return dtos(rows), nil
}

func dto(c *domain.CaseClosure) *ClosureDTO {
	return &ClosureDTO{
		ClosureID:          c.ID,
		EnquiryID:          c.EnquiryID,
		ClosureReason:      c.ClosureReason,
		FinalRemarks:       c.FinalRemarks,
		DocumentsSubmitted: c.DocumentsSubmitted,
		PaymentCleared:     c.PaymentCleared,
		PatientFeedback:    c.PatientFeedback,
		ClosureNotes:       c.ClosureNotes,
		ClosureStatus:      c.ClosureStatus,
		ClosedBy:           c.ClosedBy,
		ClosureDate:        c.ClosureDate,
		CreatedAt:          c.CreatedAt,
	}
}

func dtos(rows []domain.CaseClosure) []ClosureDTO {
	out := make([]ClosureDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *dto(&rows[i]))
	}
	return out
}
