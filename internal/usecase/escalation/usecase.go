package escalation

import (
	"context"
	"errors"
	"time"

	enquiryDomain "medevac-case-service/internal/domain/enquiry"
	domain "medevac-case-service/internal/domain/escalation"
	"medevac-case-service/internal/domain/uow"

	"go.uber.org/zap"
)

type Usecase struct {
	repo      domain.Repository
	enquiries enquiryDomain.Repository
	uow       uow.UnitOfWork
	log       *zap.Logger
}

func NewUsecase(r domain.Repository, enquiries enquiryDomain.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, enquiries: enquiries, uow: tx, log: log}
}

func (u *Usecase) List(ctx context.Context) ([]EscalationDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EscalationDTO, 0, len(rows))
	for i := range rows {
		dto, err := u.dto(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*EscalationDTO, error) {
	esc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.dto(ctx, esc)
}

// Create opens an escalation against the given enquiry and flips it to
// ESCALATED, both inside one transaction; an already-escalated enquiry is a
// conflict.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*EscalationDTO, error) {
	if in.Reason == "" {
		return nil, &enquiryDomain.ValidationError{Field: "escalation_reason", Message: "is required"}
	}
	if in.EscalatedTo == "" {
		return nil, &enquiryDomain.ValidationError{Field: "escalated_to", Message: "is required"}
	}
	if in.ByUserID == 0 {
		return nil, &enquiryDomain.ValidationError{Field: "escalated_by_user_id", Message: "is required"}
	}

	var created *domain.CaseEscalation
	err := u.uow.WithinEnquiryTx(ctx, in.EnquiryID, func(r uow.Repos, e *enquiryDomain.Enquiry) error {
		if e.Status == enquiryDomain.StatusEscalated {
			return &enquiryDomain.ConflictError{Current: e.Status}
		}
		esc := &domain.CaseEscalation{
			EnquiryID:         e.ID,
			EscalatedByUserID: in.ByUserID,
			EscalationReason:  in.Reason,
			EscalatedTo:       in.EscalatedTo,
			Status:            domain.StatusPending,
		}
		if err := r.Escalations.Create(ctx, esc); err != nil {
			return err
		}
		e.Status = enquiryDomain.StatusEscalated
		if err := r.Enquiries.Save(ctx, e); err != nil {
			return err
		}
		created = esc
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("escalation created",
		zap.Uint64("escalation_id", created.ID),
		zap.Uint64("enquiry_id", created.EnquiryID))
	return u.dto(ctx, created)
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) (*EscalationDTO, error) {
	esc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Reason != nil {
		esc.EscalationReason = *in.Reason
	}
	if in.EscalatedTo != nil {
		esc.EscalatedTo = *in.EscalatedTo
	}
	if in.Status != nil && *in.Status != esc.Status {
		switch *in.Status {
		case domain.StatusResolved:
			now := time.Now().UTC()
			esc.ResolvedAt = &now
		case domain.StatusPending:
			esc.ResolvedAt = nil
		default:
			return nil, &enquiryDomain.ValidationError{Field: "status", Message: "must be PENDING or RESOLVED"}
		}
		esc.Status = *in.Status
	}
	if err := u.repo.Save(ctx, esc); err != nil {
		return nil, err
	}
	return u.dto(ctx, esc)
}

// Resolve closes the escalation thread. The parent enquiry's status is left
// alone: resolution is a note on the exception, not a workflow transition.
func (u *Usecase) Resolve(ctx context.Context, id uint64, note string) (*EscalationDTO, error) {
	esc, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if esc.Status == domain.StatusResolved {
		return nil, domain.ErrAlreadyResolved
	}
	now := time.Now().UTC()
	esc.Status = domain.StatusResolved
	esc.ResolvedAt = &now
	esc.ResolutionNote = note
	if err := u.repo.Save(ctx, esc); err != nil {
		return nil, err
	}
	u.log.Info("escalation resolved", zap.Uint64("escalation_id", id))
	return u.dto(ctx, esc)
}

// Delete removes the escalation; when it was the last one for its enquiry the
// enquiry reverts to PENDING, in the same transaction.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		esc, err := r.Escalations.GetByID(ctx, id)
		if err != nil {
			return err
		}
		e, err := r.Enquiries.GetByIDForUpdate(ctx, esc.EnquiryID)
		enquiryExists := err == nil
		if err != nil && !errors.Is(err, enquiryDomain.ErrNotFound) {
			return err
		}
		if err := r.Escalations.Delete(ctx, id); err != nil {
			return err
		}
		remaining, err := r.Escalations.CountByEnquiryID(ctx, esc.EnquiryID, id)
		if err != nil {
			return err
		}
		if remaining == 0 && enquiryExists {
			e.Status = enquiryDomain.StatusPending
			if err := r.Enquiries.Save(ctx, e); err != nil {
				return err
			}
			u.log.Info("last escalation removed, enquiry reverted to pending",
				zap.Uint64("enquiry_id", e.ID))
		}
		return nil
	})
}

func (u *Usecase) dto(ctx context.Context, esc *domain.CaseEscalation) (*EscalationDTO, error) {
	out := &EscalationDTO{
		EscalationID:     esc.ID,
		EnquiryID:        esc.EnquiryID,
		EscalationReason: esc.EscalationReason,
		EscalatedTo:      esc.EscalatedTo,
		ByUserID:         esc.EscalatedByUserID,
		Status:           esc.Status,
		ResolutionNote:   esc.ResolutionNote,
		CreatedAt:        esc.CreatedAt,
		ResolvedAt:       esc.ResolvedAt,
	}
	e, err := u.enquiries.GetByID(ctx, esc.EnquiryID)
	if err != nil {
		if errors.Is(err, enquiryDomain.ErrNotFound) {
			return out, nil
		}
		return nil, err
	}
	out.EnquiryCode = e.EnquiryCode
	out.PatientName = e.PatientName
	out.EnquiryStatus = e.Status
	return out, nil
}
