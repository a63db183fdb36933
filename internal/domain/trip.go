package domain

import (
	"encoding/json"
	"time"
)

// Trip represents a planned journey between a source and a destination.
// Route data and geometry are externally supplied blobs stored verbatim —
// nothing in this service computes or interprets them.
type Trip struct {
	ID                     int64           `json:"id"`
	Source                 string          `json:"source"`
	Destination            string          `json:"destination"`
	SourceCoordinates      *string         `json:"sourceCoordinates"`
	DestinationCoordinates *string         `json:"destinationCoordinates"`
	TravelDate             string          `json:"travelDate"`
	TravelTime             string          `json:"travelTime"`
	TransportMode          string          `json:"transportMode"`
	OptimizationMode       string          `json:"optimizationMode"`
	Status                 string          `json:"status"`
	RouteData              json.RawMessage `json:"routeData"`
	RouteGeometry          json.RawMessage `json:"routeGeometry"`
	MatchRadius            int             `json:"matchRadius"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}
