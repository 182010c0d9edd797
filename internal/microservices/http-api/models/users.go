package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Role         string     `gorm:"default:'user';not null" json:"role"`    // "user", "seller", "admin"
	IsSubscribed bool       `gorm:"default:false" json:"is_subscribed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	// preference associations
	FavoriteGenres  []Genre  `json:"favorite_genres,omitempty" gorm:"many2many:user_favorite_genres;constraint:OnDelete:CASCADE;"`
	FavoritePersons []Person `json:"favorite_persons,omitempty" gorm:"many2many:user_favorite_persons;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

// UserActivity is one entry of a user's ordered viewing-activity sequence.
// Rows are appended on playback events; insertion order is the recency order.
type UserActivity struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;index" json:"user_id"`
	MovieID int64     `gorm:"not null;index" json:"movie_id"`
	AddedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"added_at"`
}

func (UserActivity) TableName() string {
	return "user_activity"
}
