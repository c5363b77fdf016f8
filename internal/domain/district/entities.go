package district

import "errors"

var ErrNotFound = errors.New("district not found")

type District struct {
	ID             uint64 `gorm:"column:district_id;primaryKey;autoIncrement" json:"district_id"`
	Name           string `gorm:"column:district_name;size:50;not null;uniqueIndex" json:"district_name"`
	PostOfficeName string `gorm:"column:post_office_name;size:100" json:"post_office_name"`
	Pincode        string `gorm:"column:pincode;size:10" json:"pincode"`
	State          string `gorm:"column:state;size:50;default:'Madhya Pradesh'" json:"state"`
}

func (District) TableName() string { return "districts" }
