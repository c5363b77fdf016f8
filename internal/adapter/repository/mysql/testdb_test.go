package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type enquirySQLite struct {
	ID          uint64 `gorm:"primaryKey;column:enquiry_id"`
	EnquiryCode string `gorm:"size:13;column:enquiry_code;uniqueIndex"`

	PatientName      string `gorm:"column:patient_name"`
	FatherSpouseName string `gorm:"column:father_spouse_name"`
	Age              int    `gorm:"column:age"`
	Gender           string `gorm:"type:text;column:gender"` // ← no enum
	Address          string `gorm:"column:address"`

	IdentityCardType  string `gorm:"column:identity_card_type"`
	PrimaryCardNumber string `gorm:"column:primary_card_number"`
	NationalIDNumber  string `gorm:"column:national_id_number"`
	TaxID             string `gorm:"column:tax_id"`

	MedicalCondition              string `gorm:"column:medical_condition"`
	ChiefComplaint                string `gorm:"column:chief_complaint"`
	GeneralCondition              string `gorm:"column:general_condition"`
	Vitals                        string `gorm:"type:text;column:vitals"`
	ReferringPhysicianName        string `gorm:"column:referring_physician_name"`
	ReferringPhysicianDesignation string `gorm:"column:referring_physician_designation"`
	ReferralNote                  string `gorm:"column:referral_note"`

	HospitalID     uint64 `gorm:"column:hospital_id"`
	SourceHospital uint64 `gorm:"column:source_hospital_id"`
	DistrictID     uint64 `gorm:"column:district_id"`

	TransportationCategory string `gorm:"type:text;column:transportation_category"`
	AirTransportType       string `gorm:"type:text;column:air_transport_type"`

	RecommendingAuthorityName        string `gorm:"column:recommending_authority_name"`
	RecommendingAuthorityDesignation string `gorm:"column:recommending_authority_designation"`
	ApprovalAuthorityName            string `gorm:"column:approval_authority_name"`
	ApprovalAuthorityDesignation     string `gorm:"column:approval_authority_designation"`

	BedAvailabilityConfirmed    bool   `gorm:"column:bed_availability_confirmed"`
	ALSAmbulanceArranged        bool   `gorm:"column:als_ambulance_arranged"`
	AmbulanceRegistrationNumber string `gorm:"column:ambulance_registration_number"`
	AmbulanceContact            string `gorm:"column:ambulance_contact"`

	ContactName  string `gorm:"column:contact_name"`
	ContactPhone string `gorm:"column:contact_phone"`
	ContactEmail string `gorm:"column:contact_email"`

	MedicalTeamNote string `gorm:"column:medical_team_note"`
	Remarks         string `gorm:"column:remarks"`

	SubmittedByUserID uint64 `gorm:"column:submitted_by_user_id"`

	Status string `gorm:"type:text;column:status"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (enquirySQLite) TableName() string { return "enquiries" }

type escalationSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:escalation_id"`
	EnquiryID         uint64     `gorm:"column:enquiry_id"`
	EscalatedByUserID uint64     `gorm:"column:escalated_by_user_id"`
	EscalationReason  string     `gorm:"column:escalation_reason"`
	EscalatedTo       string     `gorm:"column:escalated_to"`
	Status            string     `gorm:"type:text;column:status"`
	ResolutionNote    string     `gorm:"column:resolution_note"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	ResolvedAt        *time.Time `gorm:"column:resolved_at"`
}

func (escalationSQLite) TableName() string { return "case_escalations" }

type querySQLite struct {
	ID                uint64     `gorm:"primaryKey;column:query_id"`
	QueryCode         string     `gorm:"size:13;column:query_code;uniqueIndex"`
	EnquiryID         uint64     `gorm:"column:enquiry_id"`
	RaisedByUserID    uint64     `gorm:"column:raised_by_user_id"`
	QueryText         string     `gorm:"column:query_text"`
	ResponseText      string     `gorm:"column:response_text"`
	RespondedByUserID *uint64    `gorm:"column:responded_by_user_id"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	RespondedAt       *time.Time `gorm:"column:responded_at"`
}

func (querySQLite) TableName() string { return "case_queries" }

type documentSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:document_id"`
	EnquiryID uint64    `gorm:"column:enquiry_id"`
	Type      string    `gorm:"type:text;column:document_type"`
	FilePath  string    `gorm:"column:file_path"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (documentSQLite) TableName() string { return "documents" }

type closureSQLite struct {
	ID                 uint64     `gorm:"primaryKey;column:closure_id"`
	EnquiryID          uint64     `gorm:"column:enquiry_id"`
	ClosureReason      string     `gorm:"type:text;column:closure_reason"`
	FinalRemarks       string     `gorm:"column:final_remarks"`
	DocumentsSubmitted bool       `gorm:"column:documents_submitted"`
	PaymentCleared     bool       `gorm:"column:payment_cleared"`
	PatientFeedback    string     `gorm:"column:patient_feedback"`
	ClosureNotes       string     `gorm:"column:closure_notes"`
	ClosureStatus      string     `gorm:"type:text;column:closure_status"`
	ClosedBy           uint64     `gorm:"column:closed_by"`
	ClosureDate        *time.Time `gorm:"column:closure_date"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (closureSQLite) TableName() string { return "case_closures" }

type hospitalSQLite struct {
	ID                 uint64 `gorm:"primaryKey;column:hospital_id"`
	Name               string `gorm:"column:hospital_name"`
	DistrictID         uint64 `gorm:"column:district_id"`
	Address            string `gorm:"column:address"`
	ContactPhone       string `gorm:"column:contact_phone"`
	ContactEmail       string `gorm:"column:contact_email"`
	Type               string `gorm:"type:text;column:hospital_type"`
	ContactPersonName  string `gorm:"column:contact_person_name"`
	ContactPersonPhone string `gorm:"column:contact_person_phone"`
	ContactPersonEmail string `gorm:"column:contact_person_email"`
	RegistrationNumber string `gorm:"column:registration_number"`
}

func (hospitalSQLite) TableName() string { return "hospitals" }

type districtSQLite struct {
	ID             uint64 `gorm:"primaryKey;column:district_id"`
	Name           string `gorm:"column:district_name;uniqueIndex"`
	PostOfficeName string `gorm:"column:post_office_name"`
	Pincode        string `gorm:"column:pincode"`
	State          string `gorm:"column:state"`
}

func (districtSQLite) TableName() string { return "districts" }

type userSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:user_id"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"type:text;column:role"`
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	DistrictID   *uint64   `gorm:"column:district_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&enquirySQLite{},
		&escalationSQLite{},
		&querySQLite{},
		&documentSQLite{},
		&closureSQLite{},
		&hospitalSQLite{},
		&districtSQLite{},
		&userSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
