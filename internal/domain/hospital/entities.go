package hospital

import "errors"

var ErrNotFound = errors.New("hospital not found")

type Type string

const (
	TypeGovernment Type = "GOVERNMENT"
	TypePrivate    Type = "PRIVATE"
)

type Hospital struct {
	ID                 uint64 `gorm:"column:hospital_id;primaryKey;autoIncrement" json:"hospital_id"`
	Name               string `gorm:"column:hospital_name;size:100;not null" json:"name"`
	DistrictID         uint64 `gorm:"column:district_id;not null;index" json:"district_id"`
	Address            string `gorm:"column:address;type:text" json:"address"`
	ContactPhone       string `gorm:"column:contact_phone;size:15" json:"contact_phone"`
	ContactEmail       string `gorm:"column:contact_email;size:100" json:"contact_email"`
	Type               Type   `gorm:"column:hospital_type;type:enum('GOVERNMENT','PRIVATE');not null;default:'PRIVATE'" json:"hospital_type"`
	ContactPersonName  string `gorm:"column:contact_person_name;size:100" json:"contact_person_name"`
	ContactPersonPhone string `gorm:"column:contact_person_phone;size:15" json:"contact_person_phone"`
	ContactPersonEmail string `gorm:"column:contact_person_email;size:100" json:"contact_person_email"`
	RegistrationNumber string `gorm:"column:registration_number;size:50" json:"registration_number"`
}

func (Hospital) TableName() string { return "hospitals" }
