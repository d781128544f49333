package models

import "time"

// SystemLog is a persisted error record. Internal failures are written here
// before the client receives a generic 500.
type SystemLog struct {
	ID        string            `bson:"id" json:"id"`
	Level     string            `bson:"level" json:"level"`
	Source    string            `bson:"source" json:"source"` // handler or service that caught the error
	Message   string            `bson:"message" json:"message"`
	Detail    string            `bson:"detail,omitempty" json:"detail,omitempty"`
	Context   map[string]string `bson:"context,omitempty" json:"context,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
