package query

import (
	"context"
	"errors"
	"time"

	enquiryDomain "medevac-case-service/internal/domain/enquiry"
	domain "medevac-case-service/internal/domain/query"
	"medevac-case-service/internal/domain/user"
)

type Usecase struct {
	repo      domain.Repository
	enquiries enquiryDomain.Repository
	users     user.Repository
}

func NewUsecase(r domain.Repository, enquiries enquiryDomain.Repository, users user.Repository) *Usecase {
	return &Usecase{repo: r, enquiries: enquiries, users: users}
}

func (u *Usecase) Create(ctx context.Context, actor user.Actor, in CreateInput) (*QueryDTO, error) {
	if in.EnquiryID == 0 {
		return nil, &enquiryDomain.ValidationError{Field: "enquiry_id", Message: "is required"}
	}
	if in.QueryText == "" {
		return nil, &enquiryDomain.ValidationError{Field: "query_text", Message: "is required"}
	}
	if _, err := u.enquiries.GetByID(ctx, in.EnquiryID); err != nil {
		return nil, err
	}

	q := &domain.CaseQuery{
		EnquiryID:      in.EnquiryID,
		RaisedByUserID: actor.UserID,
		QueryText:      in.QueryText,
	}
	if err := u.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return u.dto(ctx, q)
}

func (u *Usecase) Respond(ctx context.Context, actor user.Actor, queryID uint64, responseText string) (*QueryDTO, error) {
	if responseText == "" {
		return nil, &enquiryDomain.ValidationError{Field: "response_text", Message: "is required"}
	}
	q, err := u.repo.GetByID(ctx, queryID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	responder := actor.UserID
	q.ResponseText = responseText
	q.RespondedByUserID = &responder
	q.RespondedAt = &now
	if err := u.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	return u.dto(ctx, q)
}

func (u *Usecase) List(ctx context.Context, actor user.Actor, enquiryID uint64) ([]QueryDTO, error) {
	f := domain.ListFilter{EnquiryID: enquiryID}
	if actor.RestrictedToOwn() {
		// no identity means no visibility; SubmitterID 0 would mean "unfiltered"
		if actor.UserID == 0 {
			return []QueryDTO{}, nil
		}
		f.SubmitterID = actor.UserID
	}
	rows, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]QueryDTO, 0, len(rows))
	for i := range rows {
		dto, err := u.dto(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, actor user.Actor, id uint64) (*QueryDTO, error) {
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.RestrictedToOwn() {
		e, err := u.enquiries.GetByID(ctx, q.EnquiryID)
		if err != nil {
			return nil, err
		}
		// hide other submitters' threads from restricted actors
		if e.SubmittedByUserID != actor.UserID {
			return nil, domain.ErrNotFound
		}
	}
	return u.dto(ctx, q)
}

func (u *Usecase) dto(ctx context.Context, q *domain.CaseQuery) (*QueryDTO, error) {
	out := &QueryDTO{
		QueryID:      q.ID,
		QueryCode:    q.QueryCode,
		EnquiryID:    q.EnquiryID,
		QueryText:    q.QueryText,
		ResponseText: q.ResponseText,
		CreatedAt:    q.CreatedAt,
		RespondedAt:  q.RespondedAt,
	}
	if ref, err := u.userRef(ctx, q.RaisedByUserID); err == nil {
		out.RaisedBy = ref
	} else {
		return nil, err
	}
	if q.RespondedByUserID != nil {
		ref, err := u.userRef(ctx, *q.RespondedByUserID)
		if err != nil {
			return nil, err
		}
		out.RespondedBy = ref
	}
	e, err := u.enquiries.GetByID(ctx, q.EnquiryID)
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

func (u *Usecase) userRef(ctx context.Context, id uint64) (*UserRef, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return &UserRef{UserID: id}, nil
		}
		return nil, err
	}
	return &UserRef{UserID: usr.ID, FullName: usr.FullName, Role: usr.Role}, nil
}
