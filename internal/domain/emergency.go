package domain

import (
	"encoding/json"
	"time"
)

// EmergencyContact is a person to notify about a trip, attached to exactly
// one Trip and removed with it.
type EmergencyContact struct {
	ID           int64     `json:"id"`
	TripID       int64     `json:"tripId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Relationship *string   `json:"relationship"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EmergencyAlert is a recorded alert raised during a trip. Alerts are stored,
// not delivered — SentTo is whatever recipient list the client reported,
// kept verbatim as JSON. TripID is nullable so alerts survive trip deletion.
type EmergencyAlert struct {
	ID           int64           `json:"id"`
	TripID       *int64          `json:"tripId"`
	AlertType    string          `json:"alertType"`
	LocationLat  *float64        `json:"locationLat"`
	LocationLng  *float64        `json:"locationLng"`
	LocationName *string         `json:"locationName"`
	Message      string          `json:"message"`
	SentTo       json.RawMessage `json:"sentTo"`
	CreatedAt    time.Time       `json:"createdAt"`
}
