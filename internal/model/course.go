package model

import "time"

// Course is owned by exactly one User.
type Course struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"size:255"`
	Description     string    `json:"description" gorm:"type:text"`
	EstimatedTime   *string   `json:"estimatedTime" gorm:"size:255"`
	MaterialsNeeded *string   `json:"materialsNeeded" gorm:"size:255"`
	UserID          uint      `json:"userId" gorm:"not null;index"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relations
	User *User `json:"User,omitempty" gorm:"foreignKey:UserID"`
}
