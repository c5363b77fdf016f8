package http

import (
	"errors"
	"testing"
)

type sampleReq struct {
	Name   string `validate:"required"`
	Action string `validate:"required,oneof=APPROVE REJECT"`
	Email  string `validate:"omitempty,email"`
	Phone  string `validate:"omitempty,numeric,len=10"`
}

func TestValidator_Passes(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleReq{Name: "x", Action: "APPROVE", Email: "a@b.com", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleReq{Action: "MAYBE", Email: "not-an-email", Phone: "12ab"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	got := map[string]string{}
	for _, fe := range ToFieldErrors(err) {
		got[fe.Field] = fe.Message
	}
	if got["Name"] != "is required" {
		t.Fatalf("Name: %q", got["Name"])
	}
	if got["Action"] != "must be one of: APPROVE REJECT" {
		t.Fatalf("Action: %q", got["Action"])
	}
	if got["Email"] != "must be a valid email address" {
		t.Fatalf("Email: %q", got["Email"])
	}
	if got["Phone"] != "must contain only digits" {
		t.Fatalf("Phone: %q", got["Phone"])
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fes := ToFieldErrors(errors.New("broken"))
	if len(fes) != 1 || fes[0].Field != "_" || fes[0].Message != "broken" {
		t.Fatalf("got %+v", fes)
	}
}
