package escalation

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("escalation not found")
	ErrAlreadyResolved = errors.New("escalation already resolved")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusResolved Status = "RESOLVED"
)

type CaseEscalation struct {
	ID                uint64     `gorm:"column:escalation_id;primaryKey;autoIncrement" json:"escalation_id"`
	EnquiryID         uint64     `gorm:"column:enquiry_id;not null;index" json:"enquiry_id"`
	EscalatedByUserID uint64     `gorm:"column:escalated_by_user_id;not null" json:"escalated_by_user_id"`
	EscalationReason  string     `gorm:"column:escalation_reason;type:text;not null" json:"escalation_reason"`
	EscalatedTo       string     `gorm:"column:escalated_to;size:100;not null" json:"escalated_to"`
	Status            Status     `gorm:"column:status;type:enum('PENDING','RESOLVED');default:'PENDING'" json:"status"`
	ResolutionNote    string     `gorm:"column:resolution_note;type:text" json:"resolution_note"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ResolvedAt        *time.Time `gorm:"column:resolved_at" json:"resolved_at"`
}

func (CaseEscalation) TableName() string { return "case_escalations" }
