package model

// swagger:model Notification
type Notification struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"user"`
	Title   string `gorm:"size:255" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
