package domain

import "time"

// GroupMember is a named participant record attached to exactly one Group.
// There is no user account behind a member — identity is the free-text name
// supplied at invite/join time. Members are created once and never updated.
type GroupMember struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"groupId"`
	MemberName  string    `json:"memberName"`
	MemberEmail *string   `json:"memberEmail"` // nil when not supplied or blank
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
}
