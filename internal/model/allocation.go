package model

import "time"

// Allocation assigns one user to one workstation on one calendar date.
// Rows are created by the roster loader; the only mutation performed on them
// is the owner exchange committed by an accepted swap.
type Allocation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Date          Date      `json:"date" gorm:"type:date;not null;index"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	WorkstationID uint      `json:"workstation_id" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	User        User        `json:"-" gorm:"foreignKey:UserID"`
	Workstation Workstation `json:"-" gorm:"foreignKey:WorkstationID"`
}
