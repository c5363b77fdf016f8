package enquiry

import (
	"time"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusVerified   Status = "VERIFIED"
	StatusForwarded  Status = "FORWARDED"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
	StatusEscalated  Status = "ESCALATED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusClosed     Status = "CLOSED"
)

type Enquiry struct {
	ID          uint64 `gorm:"column:enquiry_id;primaryKey;autoIncrement" json:"enquiry_id"`
	EnquiryCode string `gorm:"column:enquiry_code;size:13;uniqueIndex" json:"enquiry_code"`

	PatientName      string `gorm:"column:patient_name;size:100;not null" json:"patient_name"`
	FatherSpouseName string `gorm:"column:father_spouse_name;size:100;not null" json:"father_spouse_name"`
	Age              int    `gorm:"column:age;not null" json:"age"`
	Gender           string `gorm:"column:gender;type:enum('Male','Female','Other');not null" json:"gender"`
	Address          string `gorm:"column:address;type:text;not null" json:"address"`

	IdentityCardType  IdentityCardType `gorm:"column:identity_card_type;size:20" json:"identity_card_type"`
	PrimaryCardNumber string           `gorm:"column:primary_card_number;size:20" json:"primary_card_number"`
	NationalIDNumber  string           `gorm:"column:national_id_number;size:12" json:"national_id_number"`
	TaxID             string           `gorm:"column:tax_id;size:10" json:"tax_id"`

	MedicalCondition              string `gorm:"column:medical_condition;type:text;not null" json:"medical_condition"`
	ChiefComplaint                string `gorm:"column:chief_complaint;type:text;not null" json:"chief_complaint"`
	GeneralCondition              string `gorm:"column:general_condition;size:50;not null" json:"general_condition"`
	Vitals                        string `gorm:"column:vitals;type:enum('Stable','Unstable');not null" json:"vitals"`
	ReferringPhysicianName        string `gorm:"column:referring_physician_name;size:100;not null" json:"referring_physician_name"`
	ReferringPhysicianDesignation string `gorm:"column:referring_physician_designation;size:100;not null" json:"referring_physician_designation"`
	ReferralNote                  string `gorm:"column:referral_note;type:text" json:"referral_note"`

	HospitalID     uint64 `gorm:"column:hospital_id;not null;index" json:"hospital_id"`
	SourceHospital uint64 `gorm:"column:source_hospital_id;not null;index" json:"source_hospital_id"`
	DistrictID     uint64 `gorm:"column:district_id;not null;index" json:"district_id"`

	TransportationCategory string `gorm:"column:transportation_category;type:enum('Within Division','Out of Division','Out of State');not null" json:"transportation_category"`
	AirTransportType       string `gorm:"column:air_transport_type;type:enum('Free','Paid');not null" json:"air_transport_type"`

	RecommendingAuthorityName        string `gorm:"column:recommending_authority_name;size:100;not null" json:"recommending_authority_name"`
	RecommendingAuthorityDesignation string `gorm:"column:recommending_authority_designation;size:100;not null" json:"recommending_authority_designation"`
	ApprovalAuthorityName            string `gorm:"column:approval_authority_name;size:100;not null" json:"approval_authority_name"`
	ApprovalAuthorityDesignation     string `gorm:"column:approval_authority_designation;size:100;not null" json:"approval_authority_designation"`

	BedAvailabilityConfirmed    bool   `gorm:"column:bed_availability_confirmed;not null;default:false" json:"bed_availability_confirmed"`
	ALSAmbulanceArranged        bool   `gorm:"column:als_ambulance_arranged;not null;default:false" json:"als_ambulance_arranged"`
	AmbulanceRegistrationNumber string `gorm:"column:ambulance_registration_number;size:50" json:"ambulance_registration_number"`
	AmbulanceContact            string `gorm:"column:ambulance_contact;size:15" json:"ambulance_contact"`

	ContactName  string `gorm:"column:contact_name;size:100;not null" json:"contact_name"`
	ContactPhone string `gorm:"column:contact_phone;size:10;not null" json:"contact_phone"`
	ContactEmail string `gorm:"column:contact_email;size:100;not null" json:"contact_email"`

	MedicalTeamNote string `gorm:"column:medical_team_note;type:text" json:"medical_team_note"`
	Remarks         string `gorm:"column:remarks;type:text" json:"remarks"`

	SubmittedByUserID uint64 `gorm:"column:submitted_by_user_id;not null;index" json:"submitted_by_user_id"`

	Status Status `gorm:"column:status;type:enum('PENDING','VERIFIED','FORWARDED','APPROVED','REJECTED','ESCALATED','IN_PROGRESS','COMPLETED','CLOSED');default:'PENDING'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Enquiry) TableName() string { return "enquiries" }

// Identity returns the stored identity-proof fields for re-validation on update.
func (e *Enquiry) Identity() IdentityProof {
	return IdentityProof{
		CardType:          e.IdentityCardType,
		PrimaryCardNumber: e.PrimaryCardNumber,
		NationalIDNumber:  e.NationalIDNumber,
		TaxID:             e.TaxID,
	}
}
