package model

import (
	"time"

	"gorm.io/datatypes"
)

// swagger:model Mentor
type Mentor struct {
	BaseModel
	Name           string                         `gorm:"size:100;not null" json:"name"`
	Bio            string                         `gorm:"type:text" json:"bio"`
	Skills         datatypes.JSONSlice[string]    `gorm:"type:json" json:"skills"`
	AvailableSlots datatypes.JSONSlice[time.Time] `gorm:"type:json" json:"availableSlots"`
	Rating         float64                        `gorm:"default:0" json:"rating"`
}

func (Mentor) TableName() string {
	return "mentors"
}

type SessionStatus string

const (
	SessionBooked    SessionStatus = "Booked"
	SessionCompleted SessionStatus = "Completed"
	SessionCancelled SessionStatus = "Cancelled"
)

// swagger:model MentorSession
type MentorSession struct {
	BaseModel
	MentorID uint          `gorm:"index;not null" json:"mentorId"`
	Mentor   *Mentor       `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	UserID   uint          `gorm:"index;not null" json:"userId"`
	Time     time.Time     `gorm:"not null" json:"time"`
	Notes    string        `gorm:"type:text" json:"notes"`
	Status   SessionStatus `gorm:"type:enum('Booked','Completed','Cancelled');default:'Booked'" json:"status"`
}

func (MentorSession) TableName() string {
	return "mentor_sessions"
}
