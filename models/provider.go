package models

import "time"

// Provider represents a business offering services on the platform.
type Provider struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	Verified     bool      `bson:"verified" json:"verified"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ProviderAuthResponse carries the issued token and the provider record.
type ProviderAuthResponse struct {
	Token    string    `json:"token"`
	Provider *Provider `json:"provider,omitempty"`
}
