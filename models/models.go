package models

import (
	"fmt"
	"time"
)

// RequestStatus enum
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// ParseRequestStatus converts an external status string into the closed
// enum. Unrecognized values are an error, never stored.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Priority enum
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority converts an external priority string into the closed enum.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// Request model - an aid request with a lifecycle status
type Request struct {
	ID           int64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title        string        `gorm:"column:title;not null" json:"title"`
	Description  string        `gorm:"column:description;not null" json:"description"`
	Location     string        `gorm:"column:location" json:"location"`
	AmountNeeded int64         `gorm:"column:amount_needed;not null" json:"amountNeeded"`
	Priority     Priority      `gorm:"column:priority;not null" json:"priority"`
	Status       RequestStatus `gorm:"column:status;default:pending;index" json:"status"`
	SubmittedBy  string        `gorm:"column:submitted_by;not null" json:"submittedBy"`
	PostedAt     time.Time     `gorm:"column:posted_at;autoCreateTime;index" json:"postedAt"`

	Donations []Donation `gorm:"foreignKey:RequestID" json:"donations,omitempty"`
}

func (Request) TableName() string {
	return "requests"
}

// Donation model - a contribution tied to exactly one request
type Donation struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	RequestID int64     `gorm:"column:request_id;not null;index" json:"requestId"`
	Request   *Request  `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	DonorName string    `gorm:"column:donor_name;not null" json:"donorName"`
	Amount    int64     `gorm:"column:amount;not null" json:"amount"`
	DonatedAt time.Time `gorm:"column:donated_at;autoCreateTime;index" json:"donatedAt"`
}

func (Donation) TableName() string {
	return "donations"
}
