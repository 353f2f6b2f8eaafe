package models

import "time"

// StateRecord is one persisted JSON blob scoped to a session. The
// storefront keeps its whole durable state under three keys per
// session: "cart", "orderDetails" and "orderNumber". Records are only
// ever overwritten, never deleted.
type StateRecord struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"uniqueIndex:idx_state_session_key;not null"`
	Key       string `gorm:"uniqueIndex:idx_state_session_key;not null"`
	Value     []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}
