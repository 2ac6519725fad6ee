package models

import (
	"time"

	"github.com/google/uuid"
)

// PinAttemptDB is an append-only log of transaction PIN entries.
type PinAttemptDB struct {
	AttemptID uuid.UUID `json:"attempt_id" db:"attempt_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Success   bool      `json:"success" db:"success"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LoginEventDB is an append-only log of logins with coarse geolocation,
// used as the baseline population for the location-jump risk check.
type LoginEventDB struct {
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	IP        string    `json:"ip" db:"ip"`
	Latitude  *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64  `json:"longitude,omitempty" db:"longitude"`
	DeviceID  string    `json:"device_id" db:"device_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DeviceDB tracks device fingerprints seen per user.
type DeviceDB struct {
	DeviceID    uuid.UUID `json:"device_id" db:"device_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Fingerprint string    `json:"fingerprint" db:"fingerprint"`
	FirstSeen   time.Time `json:"first_seen" db:"first_seen"`
	LastSeen    time.Time `json:"last_seen" db:"last_seen"`
}
