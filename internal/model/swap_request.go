package model

import "time"

// RequestStatus represents the lifecycle state of a swap request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Terminal reports whether the status permits no further transition.
func (s RequestStatus) Terminal() bool {
	return s != RequestStatusPending
}

// SwapRequest is a proposed exchange of two allocations between a requester
// and a target user. Both calendar dates are captured at creation time; the
// concrete allocation rows are re-resolved when the request is accepted.
type SwapRequest struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	RequesterID   uint          `json:"requester_id" gorm:"not null;index"`
	TargetUserID  uint          `json:"target_user_id" gorm:"not null;index"`
	RequesterDate Date          `json:"requester_date" gorm:"type:date;not null"` // date the requester gives up
	TargetDate    Date          `json:"target_date" gorm:"type:date;not null"`    // date the requester wants
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Relations
	Requester  User `json:"-" gorm:"foreignKey:RequesterID"`
	TargetUser User `json:"-" gorm:"foreignKey:TargetUserID"`
}
