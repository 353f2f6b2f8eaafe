package models

import "time"

// Session is the server-side owner of one storefront's state, the
// analogue of a single browser holding the demo open.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
