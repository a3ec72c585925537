// Package domain contains core concepts of the conversation system.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// User identity is opaque and immutable once created.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
