package closure

import (
	"context"
	"errors"
	"testing"

	domain "medevac-case-service/internal/domain/closure"
	enquiryDomain "medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/uow"
	"medevac-case-service/internal/testutil/closuremock"
	"medevac-case-service/internal/testutil/enquirymock"
	"medevac-case-service/internal/testutil/uowmock"

	"go.uber.org/zap"
)

type fixture struct {
	closures  *closuremock.Repo
	enquiries *enquirymock.Repo
	uc        *Usecase
}

func newFixture() *fixture {
	f := &fixture{
		closures:  &closuremock.Repo{},
		enquiries: &enquirymock.Repo{},
	}
	repos := uow.Repos{
		Enquiries: f.enquiries,
		Closures:  f.closures,
	}
	f.uc = NewUsecase(f.closures, uowmock.PassThrough(repos), zap.NewNop())
	return f
}

func TestClose_Success(t *testing.T) {
	f := newFixture()
	e := &enquiryDomain.Enquiry{ID: 3, Status: enquiryDomain.StatusCompleted}
	f.enquiries.GetByIDForUpdateFn = func(ctx context.Context, id uint64) (*enquiryDomain.Enquiry, error) {
		return e, nil
	}
	var created *domain.CaseClosure
	f.closures.CreateFn = func(ctx context.Context, c *domain.CaseClosure) error {
		c.ID = 2
		created = c
		return nil
	}

	dto, err := f.uc.Close(context.Background(), CloseInput{
		EnquiryID:     3,
		ClosureReason: domain.ReasonServiceCompleted,
		FinalRemarks:  "patient transferred and discharged",
		ClosedBy:      7,
	})
	if err != nil {
		t.Fatalf("Close err: %v", err)
	}
	if dto.ClosureStatus != domain.StatusClosed || dto.ClosureDate == nil {
		t.Fatalf("dto=%+v", dto)
	}
	if e.Status != enquiryDomain.StatusClosed {
		t.Fatalf("enquiry status=%s", e.Status)
	}
	if created == nil || created.EnquiryID != 3 {
		t.Fatalf("closure row=%+v", created)
	}
}

func TestClose_InvalidReason(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Close(context.Background(), CloseInput{
		EnquiryID:     3,
		ClosureReason: "BECAUSE",
		FinalRemarks:  "x",
		ClosedBy:      7,
	})
	var ve *enquiryDomain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "closure_reason" {
		t.Fatalf("want closure_reason ValidationError, got %v", err)
	}
}

func TestClose_MissingRemarks(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Close(context.Background(), CloseInput{
		EnquiryID:     3,
		ClosureReason: domain.ReasonServiceCompleted,
		ClosedBy:      7,
	})
	var ve *enquiryDomain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "final_remarks" {
		t.Fatalf("want final_remarks ValidationError, got %v", err)
	}
}

func TestClose_MissingEnquiry(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Close(context.Background(), CloseInput{
		EnquiryID:     99,
		ClosureReason: domain.ReasonServiceCompleted,
		FinalRemarks:  "x",
		ClosedBy:      7,
	})
	if !errors.Is(err, enquiryDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestClose_CreateFailure_DoesNotFlipStatus(t *testing.T) {
	f := newFixture()
	e := &enquiryDomain.Enquiry{ID: 3, Status: enquiryDomain.StatusCompleted}
	f.enquiries.GetByIDForUpdateFn = func(ctx context.Context, id uint64) (*enquiryDomain.Enquiry, error) {
		return e, nil
	}
	boom := errors.New("insert failed")
	f.closures.CreateFn = func(ctx context.Context, c *domain.CaseClosure) error {
		return boom
	}
	f.enquiries.SaveFn = func(ctx context.Context, saved *enquiryDomain.Enquiry) error {
		t.Fatal("status must not be written when the insert fails")
		return nil
	}

	_, err := f.uc.Close(context.Background(), CloseInput{
		EnquiryID:     3,
		ClosureReason: domain.ReasonServiceCompleted,
		FinalRemarks:  "x",
		ClosedBy:      7,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want insert error, got %v", err)
	}
}

func TestListByStatus(t *testing.T) {
	f := newFixture()
	var asked domain.Status
	f.closures.ListByStatusFn = func(ctx context.Context, status domain.Status) ([]domain.CaseClosure, error) {
		asked = status
		return []domain.CaseClosure{{ID: 1, ClosureStatus: status}}, nil
	}
	rows, err := f.uc.ListByStatus(context.Background(), domain.StatusClosed)
	if err != nil {
		t.Fatalf("ListByStatus err: %v", err)
	}
	if asked != domain.StatusClosed || len(rows) != 1 {
		t.Fatalf("asked=%s rows=%d", asked, len(rows))
	}
}
