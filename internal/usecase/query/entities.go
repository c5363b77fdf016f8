package query

import (
	"time"

	"medevac-case-service/internal/domain/enquiry"
	"medevac-case-service/internal/domain/user"
)

type CreateInput struct {
	EnquiryID uint64 `json:"enquiry_id"`
	QueryText string `json:"query_text"`
}

type UserRef struct {
	UserID   uint64    `json:"user_id"`
	FullName string    `json:"full_name,omitempty"`
	Role     user.Role `json:"role,omitempty"`
}

type QueryDTO struct {
	QueryID      uint64     `json:"query_id"`
	QueryCode    string     `json:"query_code"`
	EnquiryID    uint64     `json:"enquiry_id"`
	QueryText    string     `json:"query_text"`
	ResponseText string     `json:"response_text,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	RespondedAt  *time.Time `json:"responded_at"`

	RaisedBy    *UserRef `json:"raised_by,omitempty"`
	RespondedBy *UserRef `json:"responded_by,omitempty"`

	EnquiryCode   string         `json:"enquiry_code,omitempty"`
	PatientName   string         `json:"patient_name,omitempty"`
	EnquiryStatus enquiry.Status `json:"enquiry_status,omitempty"`
}
