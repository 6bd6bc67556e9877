package model

import "time"

// User represents an employee who can hold workstation allocations and
// exchange them with colleagues.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"size:255;not null;index"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	SwapCredits  int       `json:"swap_credits" gorm:"not null;default:3"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Allocations []Allocation `json:"allocations,omitempty" gorm:"foreignKey:UserID"`
}
