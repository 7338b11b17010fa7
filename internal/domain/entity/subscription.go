package entity

import "time"

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid checks if the SubscriptionStatus is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionCancelled, SubscriptionExpired:
		return true
	default:
		return false
	}
}

// SubscriptionPlan is one of a small fixed catalog of tiers.
type SubscriptionPlan struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Description  string  `json:"description"`
}

// Subscription links a subscriber to a creator through a plan.
type Subscription struct {
	ID           int64              `json:"id"`
	SubscriberID int64              `json:"subscriber_id"`
	CreatorID    int64              `json:"creator_id"`
	PlanID       int64              `json:"plan_id"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Status       SubscriptionStatus `json:"status"`
}
