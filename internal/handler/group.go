package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// createGroupRequest holds the POST /groups body. TripID is decoded loosely
// because clients send it as a number, a numeric string, or null.
type createGroupRequest struct {
	Name   string `json:"name"`
	TripID any    `json:"tripId"`
}

// createGroup handles POST /groups.
func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, domain.CodeMissingName,
			"Name is required and must be a non-empty string")
		return
	}

	tripID, err := optionalID(req.TripID)
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID,
			"Trip ID must be a valid integer")
		return
	}

	group, err := s.groups.Create(r.Context(), req.Name, tripID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, domain.CodeCreateFailed,
			"Internal server error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, group)
}

// listGroups handles GET /groups.
func (s *Server) listGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.List(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// getGroup handles GET /groups/{groupID}.
func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "groupID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidID, "Valid group ID is required")
		return
	}

	detail, err := s.groups.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, domain.CodeGroupNotFound, "Group not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// optionalID coerces a loosely typed tripId value into an id pointer.
// null and absent mean no reference, and a zero id is treated as absent.
// Numbers must be integral; strings must parse as integers.
func optionalID(v any) (*int64, error) {
	var id int64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		id = int64(t)
		if float64(id) != t {
			return nil, fmt.Errorf("not an integer: %v", t)
		}
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", t)
		}
		id = parsed
	default:
		return nil, fmt.Errorf("unsupported id type %T", v)
	}

	if id == 0 {
		return nil, nil
	}
	return &id, nil
}
