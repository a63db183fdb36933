package handler

import (
	"net/http"
	"strings"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// addMemberRequest holds the body shared by the invite and join endpoints.
type addMemberRequest struct {
	MemberName  string  `json:"memberName"`
	MemberEmail *string `json:"memberEmail"`
}

// memberEntry captures the wire differences between the two membership entry
// points. Both run the same operation, but each historically reported its own
// error codes and response envelope, and clients depend on them.
type memberEntry struct {
	missingName domain.Code
	invalidID   domain.Code
	recordKey   string
	successMsg  string
}

var (
	inviteEntry = memberEntry{
		missingName: domain.CodeMissingMemberName,
		invalidID:   domain.CodeInvalidGroupID,
		recordKey:   "member",
		successMsg:  "Member invited successfully",
	}
	joinEntry = memberEntry{
		missingName: domain.CodeInvalidName,
		invalidID:   domain.CodeInvalidID,
		recordKey:   "membership",
		successMsg:  "Successfully joined the group",
	}
)

// inviteMember handles POST /groups/{groupID}/invite.
func (s *Server) inviteMember(w http.ResponseWriter, r *http.Request) {
	s.addMember(w, r, inviteEntry)
}

// joinGroup handles POST /groups/{groupID}/join.
func (s *Server) joinGroup(w http.ResponseWriter, r *http.Request) {
	s.addMember(w, r, joinEntry)
}

// addMember implements the shared invite/join contract. The check order is
// part of that contract: the member name is validated before the group id,
// and the group lookup happens before any insert.
func (s *Server) addMember(w http.ResponseWriter, r *http.Request, entry memberEntry) {
	var req addMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.MemberName) == "" {
		writeError(w, http.StatusBadRequest, entry.missingName, "Member name is required")
		return
	}

	groupID, ok := pathID(r, "groupID")
	if !ok {
		writeError(w, http.StatusBadRequest, entry.invalidID, "Valid group ID is required")
		return
	}

	member, err := s.membership.AddMember(r.Context(), groupID, req.MemberName, req.MemberEmail)
	if err != nil {
		writeServiceError(w, err, domain.CodeGroupNotFound, "Group not found")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":       entry.successMsg,
		entry.recordKey: member,
	})
}
