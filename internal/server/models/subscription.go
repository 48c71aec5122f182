package models

import "time"

// Subscription is a newsletter signup. It is never updated.
type Subscription struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
