package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleBeneficiary     Role = "BENEFICIARY"
	RoleCMO             Role = "CMO"
	RoleSDM             Role = "SDM"
	RoleDM              Role = "DM"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	RoleAdmin           Role = "ADMIN"
	RoleHospital        Role = "HOSPITAL"
	RoleSupport         Role = "SUPPORT"
)

type User struct {
	ID           uint64    `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username     string    `gorm:"column:username;size:100;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role         Role      `gorm:"column:role;type:enum('BENEFICIARY','CMO','SDM','DM','SERVICE_PROVIDER','ADMIN','HOSPITAL','SUPPORT');not null" json:"role"`
	FullName     string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Email        string    `gorm:"column:email;size:100;uniqueIndex" json:"email"`
	Phone        string    `gorm:"column:phone;size:15" json:"phone"`
	DistrictID   *uint64   `gorm:"column:district_id" json:"district_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated identity a request acts as. CMO actors only see
// enquiries (and their query threads) they submitted themselves.
type Actor struct {
	UserID uint64
	Role   Role
}

func (a Actor) RestrictedToOwn() bool { return a.Role == RoleCMO }
