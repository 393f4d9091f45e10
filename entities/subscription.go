package entities

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

type Subscription struct {
	SubscriptionID uint               `gorm:"primaryKey" json:"subscription_id"`
	UserID         uint               `gorm:"index" json:"user_id"`
	Plan           string             `json:"plan"` // monthly|seasonal|annual
	Status         SubscriptionStatus `json:"status"`
	StartedAt      time.Time          `json:"started_at"`
	CancelledAt    *time.Time         `json:"cancelled_at,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
