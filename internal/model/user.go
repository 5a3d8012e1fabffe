package model

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleEmployer UserRole = "employer"
	RoleMentor   UserRole = "mentor"
	RoleAdmin    UserRole = "admin"
)

type Badge struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DateEarned  time.Time `json:"dateEarned"`
}

type Profile struct {
	Bio            string   `json:"bio,omitempty"`
	Education      []string `json:"education,omitempty"`
	Experience     []string `json:"experience,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
}

// swagger:model User
type User struct {
	BaseModel
	Name     string                      `gorm:"size:100;not null" json:"name"`
	Email    string                      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string                      `gorm:"size:100;not null" json:"-"`
	Role     UserRole                    `gorm:"type:enum('user','employer','mentor','admin');default:'user'" json:"role"`
	Skills   datatypes.JSONSlice[string] `gorm:"type:json" json:"skills"`
	Badges   datatypes.JSONSlice[Badge]  `gorm:"type:json" json:"badges"`
	Profile  datatypes.JSONType[Profile] `gorm:"type:json" json:"profile"`
}

func (User) TableName() string {
	return "users"
}
