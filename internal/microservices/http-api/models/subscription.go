package models

import "time"

type Subscription struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Plan      string     `gorm:"not null" json:"plan"` // "monthly", "yearly"
	Active    bool       `gorm:"default:true" json:"active"`
	StartedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"started_at"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CanceledAt *time.Time `json:"canceled_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
