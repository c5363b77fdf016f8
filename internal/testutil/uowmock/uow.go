package uowmock

import (
	"context"
	"errors"

	"medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinEnquiryTxFn func(ctx context.Context, enquiryID uint64, fn func(r uow.Repos, e *enquiry.Enquiry) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinEnquiryTx(fn func(context.Context, uint64, func(uow.Repos, *enquiry.Enquiry) error) error) *UoW {
	m.WithinEnquiryTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinEnquiryTx(ctx context.Context, enquiryID uint64, fn func(r uow.Repos, e *enquiry.Enquiry) error) error {
	if m.WithinEnquiryTxFn != nil {
		return m.WithinEnquiryTxFn(ctx, enquiryID, fn)
	}
	return errUnimplemented
}

// PassThrough wires both methods to run the callback directly against the
// given repos, with Enquiries.GetByIDForUpdate supplying the locked row.
func PassThrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinEnquiryTxFn: func(ctx context.Context, enquiryID uint64, fn func(uow.Repos, *enquiry.Enquiry) error) error {
			e, err := r.Enquiries.GetByIDForUpdate(ctx, enquiryID)
			if err != nil {
				return err
			}
			return fn(r, e)
		},
	}
}
