package closure

import (
	"time"

	"medevac-case-service/internal/domain/closure"
)

type CloseInput struct {
	EnquiryID          uint64         `json:"enquiry_id"`
	ClosureReason      closure.Reason `json:"closure_reason"`
	FinalRemarks       string         `json:"final_remarks"`
	DocumentsSubmitted bool           `json:"documents_submitted"`
	PaymentCleared     bool           `json:"payment_cleared"`
	PatientFeedback    string         `json:"patient_feedback"`
	ClosureNotes       string         `json:"closure_notes"`
	ClosedBy           uint64         `json:"closed_by"`
}

type ClosureDTO struct {
	ClosureID          uint64         `json:"closure_id"`
	EnquiryID          uint64         `json:"enquiry_id"`
	ClosureReason      closure.Reason `json:"closure_reason"`
	FinalRemarks       string         `json:"final_remarks"`
	DocumentsSubmitted bool           `json:"documents_submitted"`
	PaymentCleared     bool           `json:"payment_cleared"`
	PatientFeedback    string         `json:"patient_feedback,omitempty"`
	ClosureNotes       string         `json:"closure_notes,omitempty"`
	ClosureStatus      closure.Status `json:"closure_status"`
	ClosedBy           uint64         `json:"closed_by"`
	ClosureDate        *time.Time     `json:"closure_date"`
	CreatedAt          time.Time      `json:"created_at"`
}
