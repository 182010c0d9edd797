package models

import "time"

// Person is a director or cast member referenced by movies.
type Person struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"not null;index"`
	Bio       *string    `json:"bio,omitempty" gorm:"type:text"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (Person) TableName() string {
	return "persons"
}
