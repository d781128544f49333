package models

import "time"

// Notification recipient roles.
const (
	RecipientUser     = "user"
	RecipientProvider = "provider"
)

// Notification is a persisted in-app notification. FCM pushes are best-effort
// and layered on top; the row is the source of truth.
type Notification struct {
	ID            string            `bson:"id" json:"id"`
	RecipientID   string            `bson:"recipient_id" json:"recipient_id"`
	RecipientRole string            `bson:"recipient_role" json:"recipient_role"`
	Type          string            `bson:"type" json:"type"` // e.g. "booking_created", "booking_cancelled"
	Title         string            `bson:"title" json:"title"`
	Body          string            `bson:"body" json:"body"`
	Data          map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read          bool              `bson:"read" json:"read"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
}
