package escalation

import (
	"time"

	"medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/escalation"
)

type CreateInput struct {
	EnquiryID   uint64 `json:"enquiry_id"`
	Reason      string `json:"escalation_reason"`
	EscalatedTo string `json:"escalated_to"`
	ByUserID    uint64 `json:"escalated_by_user_id"`
}

// UpdateInput is partial; nil fields are untouched.
type UpdateInput struct {
	Reason      *string            `json:"escalation_reason"`
	EscalatedTo *string            `json:"escalated_to"`
	Status      *escalation.Status `json:"status"`
}

type EscalationDTO struct {
	EscalationID     uint64            `json:"escalation_id"`
	EnquiryID        uint64            `json:"enquiry_id"`
	EscalationReason string            `json:"escalation_reason"`
	EscalatedTo      string            `json:"escalated_to"`
	ByUserID         uint64            `json:"escalated_by_user_id"`
	Status           escalation.Status `json:"status"`
	ResolutionNote   string            `json:"resolution_note,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	ResolvedAt       *time.Time        `json:"resolved_at"`

	EnquiryCode   string         `json:"enquiry_code,omitempty"`
	PatientName   string         `json:"patient_name,omitempty"`
	EnquiryStatus enquiry.Status `json:"enquiry_status,omitempty"`
}
