package closure

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("case closure not found")

type Reason string

const (
	ReasonServiceCompleted      Reason = "SERVICE_COMPLETED"
	ReasonPatientTransferred    Reason = "PATIENT_TRANSFERRED"
	ReasonDocumentationComplete Reason = "DOCUMENTATION_COMPLETE"
	ReasonPaymentCleared        Reason = "PAYMENT_CLEARED"
)

func (r Reason) Valid() bool {
	switch r {
	case ReasonServiceCompleted, ReasonPatientTransferred, ReasonDocumentationComplete, ReasonPaymentCleared:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusClosed   Status = "CLOSED"
	StatusRejected Status = "REJECTED"
)

type CaseClosure struct {
	ID                 uint64     `gorm:"column:closure_id;primaryKey;autoIncrement" json:"closure_id"`
	EnquiryID          uint64     `gorm:"column:enquiry_id;not null;index" json:"enquiry_id"`
	ClosureReason      Reason     `gorm:"column:closure_reason;type:enum('SERVICE_COMPLETED','PATIENT_TRANSFERRED','DOCUMENTATION_COMPLETE','PAYMENT_CLEARED');not null" json:"closure_reason"`
	FinalRemarks       string     `gorm:"column:final_remarks;type:text;not null" json:"final_remarks"`
	DocumentsSubmitted bool       `gorm:"column:documents_submitted;default:false" json:"documents_submitted"`
	PaymentCleared     bool       `gorm:"column:payment_cleared;default:false" json:"payment_cleared"`
	PatientFeedback    string     `gorm:"column:patient_feedback;type:text" json:"patient_feedback"`
	ClosureNotes       string     `gorm:"column:closure_notes;type:text" json:"closure_notes"`
	ClosureStatus      Status     `gorm:"column:closure_status;type:enum('PENDING','CLOSED','REJECTED');default:'PENDING'" json:"closure_status"`
	ClosedBy           uint64     `gorm:"column:closed_by;not null" json:"closed_by"`
	ClosureDate        *time.Time `gorm:"column:closure_date" json:"closure_date"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CaseClosure) TableName() string { return "case_closures" }
