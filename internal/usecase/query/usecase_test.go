package query

import (
	"context"
	"errors"
	"testing"

	enquiryDomain "medevac-case-service/internal/domain/enquiry"
	domain "medevac-case-service/internal/domain/query"
	"medevac-case-service/internal/domain/user"
	"medevac-case-service/internal/testutil/enquirymock"
	"medevac-case-service/internal/testutil/querymock"
	"medevac-case-service/internal/testutil/referencemock"
)

type fixture struct {
	queries   *querymock.Repo
	enquiries *enquirymock.Repo
	users     *referencemock.UserRepo
	uc        *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		queries:   &querymock.Repo{},
		enquiries: &enquirymock.Repo{},
		users:     &referencemock.UserRepo{},
	}
	f.uc = NewUsecase(f.queries, f.enquiries, f.users)
	return f
}

func TestCreate_Success(t *testing.T) {
	f := newFixture()
	f.enquiries.GetByIDFn = func(ctx context.Context, id uint64) (*enquiryDomain.Enquiry, error) {
		return &enquiryDomain.Enquiry{ID: id, EnquiryCode: "ENQ0000000003", Status: enquiryDomain.StatusForwarded}, nil
	}
	f.queries.CreateFn = func(ctx context.Context, q *domain.CaseQuery) error {
		q.ID = 4
		q.QueryCode = "QRY0000000004"
		return nil
	}

	actor := user.Actor{UserID: 5, Role: user.RoleDM}
	dto, err := f.uc.Create(context.Background(), actor, CreateInput{EnquiryID: 3, QueryText: "need vitals chart"})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if dto.QueryCode != "QRY0000000004" || dto.EnquiryCode != "ENQ0000000003" {
		t.Fatalf("dto=%+v", dto)
	}
	if dto.RaisedBy == nil || dto.RaisedBy.UserID != 5 {
		t.Fatalf("raised_by=%+v", dto.RaisedBy)
	}
}

func TestCreate_MissingEnquiry(t *testing.T) {
	f := newFixture()
	actor := user.Actor{UserID: 5, Role: user.RoleDM}
	_, err := f.uc.Create(context.Background(), actor, CreateInput{EnquiryID: 99, QueryText: "q"})
	if !errors.Is(err, enquiryDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreate_MissingText(t *testing.T) {
	f := newFixture()
	actor := user.Actor{UserID: 5, Role: user.RoleDM}
	_, err := f.uc.Create(context.Background(), actor, CreateInput{EnquiryID: 3})
	var ve *enquiryDomain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "query_text" {
		t.Fatalf("want query_text ValidationError, got %v", err)
	}
}

func TestRespond_RecordsResponderAndTime(t *testing.T) {
	f := newFixture()
	q := &domain.CaseQuery{ID: 4, EnquiryID: 3, RaisedByUserID: 5, QueryText: "q"}
	f.queries.GetByIDFn = func(ctx context.Context, id uint64) (*domain.CaseQuery, error) {
		return q, nil
	}

	actor := user.Actor{UserID: 7, Role: user.RoleCMO}
	dto, err := f.uc.Respond(context.Background(), actor, 4, "attached below")
	if err != nil {
		t.Fatalf("Respond err: %v", err)
	}
	if dto.ResponseText != "attached below" || dto.RespondedAt == nil {
		t.Fatalf("dto=%+v", dto)
	}
	if dto.RespondedBy == nil || dto.RespondedBy.UserID != 7 {
		t.Fatalf("responded_by=%+v", dto.RespondedBy)
	}
}

func TestList_CMO_ScopesToOwnSubmissions(t *testing.T) {
	f := newFixture()
	var got domain.ListFilter
	f.queries.ListFn = func(ctx context.Context, filt domain.ListFilter) ([]domain.CaseQuery, error) {
		got = filt
		return nil, nil
	}

	cmo := user.Actor{UserID: 7, Role: user.RoleCMO}
	if _, err := f.uc.List(context.Background(), cmo, 3); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if got.EnquiryID != 3 || got.SubmitterID != 7 {
		t.Fatalf("filter=%+v", got)
	}

	dm := user.Actor{UserID: 5, Role: user.RoleDM}
	if _, err := f.uc.List(context.Background(), dm, 3); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if got.SubmitterID != 0 {
		t.Fatalf("DM must not be submitter-scoped: %+v", got)
	}
}

func TestList_CMO_WithoutIdentity_SeesNothing(t *testing.T) {
	f := newFixture()
	listed := false
	f.queries.ListFn = func(ctx context.Context, filt domain.ListFilter) ([]domain.CaseQuery, error) {
		listed = true
		return []domain.CaseQuery{{ID: 4, EnquiryID: 3}}, nil
	}

	anon := user.Actor{UserID: 0, Role: user.RoleCMO}
	dtos, err := f.uc.List(context.Background(), anon, 0)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(dtos) != 0 {
		t.Fatalf("restricted actor without identity saw %d threads", len(dtos))
	}
	if listed {
		t.Fatal("repository must not be queried without a submitter to scope by")
	}
}

func TestGet_CMO_ForeignThreadLooksMissing(t *testing.T) {
	f := newFixture()
	f.queries.GetByIDFn = func(ctx context.Context, id uint64) (*domain.CaseQuery, error) {
		return &domain.CaseQuery{ID: 4, EnquiryID: 3, RaisedByUserID: 5}, nil
	}
	f.enquiries.GetByIDFn = func(ctx context.Context, id uint64) (*enquiryDomain.Enquiry, error) {
		return &enquiryDomain.Enquiry{ID: 3, SubmittedByUserID: 8}, nil
	}

	cmo := user.Actor{UserID: 7, Role: user.RoleCMO}
	if _, err := f.uc.Get(context.Background(), cmo, 4); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	owner := user.Actor{UserID: 8, Role: user.RoleCMO}
	if _, err := f.uc.Get(context.Background(), owner, 4); err != nil {
		t.Fatalf("owner must see the thread: %v", err)
	}
}
