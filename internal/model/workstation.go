package model

import "time"

// Workstation is a numbered physical desk. Created by the roster loader and
// immutable afterwards.
type Workstation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Number      int       `json:"number" gorm:"uniqueIndex;not null"`
	Description string    `json:"description,omitempty" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Allocations []Allocation `json:"-" gorm:"foreignKey:WorkstationID"`
}
