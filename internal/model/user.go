package model

import "time"

// User is an account that can authenticate and own courses.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"firstName" gorm:"size:255"`
	LastName     string    `json:"lastName" gorm:"size:255"`
	EmailAddress string    `json:"emailAddress" gorm:"uniqueIndex;size:255;not null"`
	Password     string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relations
	Courses []Course `json:"courses,omitempty" gorm:"foreignKey:UserID"`
}
