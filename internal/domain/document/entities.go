package document

import (
	"time"
)

type Type string

const (
	TypePrimaryProof  Type = "PRIMARY_PROOF"
	TypeIDProof       Type = "ID_PROOF"
	TypeMedicalReport Type = "MEDICAL_REPORT"
	TypeOther         Type = "OTHER"
)

// Valid reports whether t is one of the accepted upload types. Unknown values
// are a validation error, never silently dropped.
func (t Type) Valid() bool {
	switch t {
	case TypePrimaryProof, TypeIDProof, TypeMedicalReport, TypeOther:
		return true
	}
	return false
}

type Document struct {
	ID        uint64    `gorm:"column:document_id;primaryKey;autoIncrement" json:"document_id"`
	EnquiryID uint64    `gorm:"column:enquiry_id;not null;index" json:"enquiry_id"`
	Type      Type      `gorm:"column:document_type;type:enum('PRIMARY_PROOF','ID_PROOF','MEDICAL_REPORT','OTHER');not null" json:"document_type"`
	FilePath  string    `gorm:"column:file_path;size:255;not null" json:"file_path"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }
