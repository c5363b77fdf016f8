package enquiry

import (
	"time"

	"medevac-case-service/internal/domain/document"
	"medevac-case-service/internal/domain/enquiry"
)

type DocumentInput struct {
	Type     document.Type `json:"document_type"`
	FilePath string        `json:"file_path"`
}

type CreateEnquiryInput struct {
	PatientName      string `json:"patient_name"        validate:"required,max=100"`
	FatherSpouseName string `json:"father_spouse_name"  validate:"required,max=100"`
	Age              int    `json:"age"                 validate:"required,gte=0,lte=150"`
	Gender           string `json:"gender"              validate:"required,oneof=Male Female Other"`
	Address          string `json:"address"             validate:"required"`

	IdentityCardType  enquiry.IdentityCardType `json:"identity_card_type"`
	PrimaryCardNumber string                   `json:"primary_card_number"`
	NationalIDNumber  string                   `json:"national_id_number"`
	TaxID             string                   `json:"tax_id"`

	MedicalCondition              string `json:"medical_condition"               validate:"required"`
	ChiefComplaint                string `json:"chief_complaint"                 validate:"required"`
	GeneralCondition              string `json:"general_condition"               validate:"required,max=50"`
	Vitals                        string `json:"vitals"                          validate:"required,oneof=Stable Unstable"`
	ReferringPhysicianName        string `json:"referring_physician_name"        validate:"required,max=100"`
	ReferringPhysicianDesignation string `json:"referring_physician_designation" validate:"required,max=100"`
	ReferralNote                  string `json:"referral_note"`

	HospitalID       uint64 `json:"hospital_id"        validate:"required"`
	SourceHospitalID uint64 `json:"source_hospital_id" validate:"required"`
	DistrictID       uint64 `json:"district_id"        validate:"required"`

	TransportationCategory string `json:"transportation_category" validate:"required,oneof='Within Division' 'Out of Division' 'Out of State'"`
	AirTransportType       string `json:"air_transport_type"      validate:"required,oneof=Free Paid"`

	RecommendingAuthorityName        string `json:"recommending_authority_name"        validate:"required,max=100"`
	RecommendingAuthorityDesignation string `json:"recommending_authority_designation" validate:"required,max=100"`
	ApprovalAuthorityName            string `json:"approval_authority_name"            validate:"required,max=100"`
	ApprovalAuthorityDesignation     string `json:"approval_authority_designation"     validate:"required,max=100"`

	BedAvailabilityConfirmed    bool   `json:"bed_availability_confirmed"`
	ALSAmbulanceArranged        bool   `json:"als_ambulance_arranged"`
	AmbulanceRegistrationNumber string `json:"ambulance_registration_number"`
	AmbulanceContact            string `json:"ambulance_contact"`

	ContactName  string `json:"contact_name"  validate:"required,max=100"`
	ContactPhone string `json:"contact_phone" validate:"required,len=10,numeric"`
	ContactEmail string `json:"contact_email" validate:"required,email"`

	MedicalTeamNote string `json:"medical_team_note"`
	Remarks         string `json:"remarks"`

	SubmittedByUserID uint64 `json:"submitted_by_user_id" validate:"required"`

	Documents []DocumentInput `json:"documents,omitempty"`
}

func (in CreateEnquiryInput) proof() enquiry.IdentityProof {
	return enquiry.IdentityProof{
		CardType:          in.IdentityCardType,
		PrimaryCardNumber: in.PrimaryCardNumber,
		NationalIDNumber:  in.NationalIDNumber,
		TaxID:             in.TaxID,
	}
}

// UpdateEnquiryInput carries a partial payload; nil means "field untouched".
type UpdateEnquiryInput struct {
	PatientName      *string `json:"patient_name"`
	FatherSpouseName *string `json:"father_spouse_name"`
	Age              *int    `json:"age"`
	Gender           *string `json:"gender"`
	Address          *string `json:"address"`

	IdentityCardType  *enquiry.IdentityCardType `json:"identity_card_type"`
	PrimaryCardNumber *string                   `json:"primary_card_number"`
	NationalIDNumber  *string                   `json:"national_id_number"`
	TaxID             *string                   `json:"tax_id"`

	MedicalCondition              *string `json:"medical_condition"`
	ChiefComplaint                *string `json:"chief_complaint"`
	GeneralCondition              *string `json:"general_condition"`
	Vitals                        *string `json:"vitals"`
	ReferringPhysicianName        *string `json:"referring_physician_name"`
	ReferringPhysicianDesignation *string `json:"referring_physician_designation"`
	ReferralNote                  *string `json:"referral_note"`

	HospitalID       *uint64 `json:"hospital_id"`
	SourceHospitalID *uint64 `json:"source_hospital_id"`
	DistrictID       *uint64 `json:"district_id"`

	TransportationCategory *string `json:"transportation_category"`
	AirTransportType       *string `json:"air_transport_type"`

	RecommendingAuthorityName        *string `json:"recommending_authority_name"`
	RecommendingAuthorityDesignation *string `json:"recommending_authority_designation"`
	ApprovalAuthorityName            *string `json:"approval_authority_name"`
	ApprovalAuthorityDesignation     *string `json:"approval_authority_designation"`

	BedAvailabilityConfirmed    *bool   `json:"bed_availability_confirmed"`
	ALSAmbulanceArranged        *bool   `json:"als_ambulance_arranged"`
	AmbulanceRegistrationNumber *string `json:"ambulance_registration_number"`
	AmbulanceContact            *string `json:"ambulance_contact"`

	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`

	MedicalTeamNote *string `json:"medical_team_note"`
	Remarks         *string `json:"remarks"`

	// non-nil replaces the full document set
	Documents []DocumentInput `json:"documents,omitempty"`
}

// touchesIdentity reports whether the payload names any identity-proof field.
// When it does not, identity validation is skipped (record assumed previously
// valid).
func (in UpdateEnquiryInput) touchesIdentity() bool {
	return in.IdentityCardType != nil || in.PrimaryCardNumber != nil ||
		in.NationalIDNumber != nil || in.TaxID != nil
}

type EscalateInput struct {
	Reason      string `json:"escalation_reason"`
	EscalatedTo string `json:"escalated_to"`
	ByUserID    uint64 `json:"escalated_by_user_id"`
}

type DocumentDTO struct {
	DocumentID uint64        `json:"document_id"`
	Type       document.Type `json:"document_type"`
	FilePath   string        `json:"file_path"`
}

type EnquiryDTO struct {
	EnquiryID   uint64         `json:"enquiry_id"`
	EnquiryCode string         `json:"enquiry_code"`
	PatientName string         `json:"patient_name"`
	Status      enquiry.Status `json:"status"`

	IdentityCardType  enquiry.IdentityCardType `json:"identity_card_type"`
	PrimaryCardNumber string                   `json:"primary_card_number,omitempty"`
	NationalIDNumber  string                   `json:"national_id_number,omitempty"`
	TaxID             string                   `json:"tax_id,omitempty"`

	MedicalCondition string `json:"medical_condition"`
	ChiefComplaint   string `json:"chief_complaint"`
	GeneralCondition string `json:"general_condition"`
	Vitals           string `json:"vitals"`

	HospitalID         uint64 `json:"hospital_id"`
	HospitalName       string `json:"hospital_name,omitempty"`
	SourceHospitalID   uint64 `json:"source_hospital_id"`
	SourceHospitalName string `json:"source_hospital_name,omitempty"`
	DistrictID         uint64 `json:"district_id"`
	DistrictName       string `json:"district_name,omitempty"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`

	SubmittedByUserID uint64 `json:"submitted_by_user_id"`

	Documents []DocumentDTO `json:"documents"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
