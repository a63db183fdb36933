// Package domain contains the core data types for the Travel Companion API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Group is a named collection of trip participants coordinating together.
// A group optionally references one Trip and exclusively owns its member and
// message collections; deleting a group cascades to both.
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TripID    *int64    `json:"tripId"` // nil when the group is not linked to a trip
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GroupSummary is a Group enriched with its member list and count, as
// returned by the group listing endpoint.
type GroupSummary struct {
	Group
	MemberCount int           `json:"memberCount"`
	Members     []GroupMember `json:"members"`
}

// GroupDetail is a Group enriched with members and the referenced trip.
// Trip is nil when the group has no tripId, or when the referenced trip no
// longer exists — a dangling reference is tolerated, not an error.
type GroupDetail struct {
	Group
	Members     []GroupMember `json:"members"`
	MemberCount int           `json:"memberCount"`
	Trip        *Trip         `json:"trip"`
}
