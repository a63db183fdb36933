package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// addContactRequest holds the POST /trips/{tripID}/contacts body.
type addContactRequest struct {
	Name         string  `json:"name" validate:"required,notblank"`
	Phone        string  `json:"phone" validate:"required,notblank"`
	Email        string  `json:"email" validate:"required,email"`
	Relationship *string `json:"relationship"`
}

// raiseAlertRequest holds the POST /trips/{tripID}/alerts body. SentTo is an
// opaque JSON array recording which contacts the caller notified.
type raiseAlertRequest struct {
	AlertType    string          `json:"alertType" validate:"required,notblank"`
	Message      string          `json:"message" validate:"required,notblank"`
	LocationLat  *float64        `json:"locationLat" validate:"omitempty,latitude"`
	LocationLng  *float64        `json:"locationLng" validate:"omitempty,longitude"`
	LocationName *string         `json:"locationName"`
	SentTo       json.RawMessage `json:"sentTo"`
}

// addContact handles POST /trips/{tripID}/contacts.
func (s *Server) addContact(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID, "Valid trip ID is required")
		return
	}

	var req addContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidContact, validationMessage(err))
		return
	}

	contact := domain.EmergencyContact{
		TripID:       tripID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
	}

	created, err := s.emergency.AddContact(r.Context(), contact)
	if err != nil {
		writeServiceError(w, err, domain.CodeTripNotFound, "Trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// listContacts handles GET /trips/{tripID}/contacts.
func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID, "Valid trip ID is required")
		return
	}

	contacts, err := s.emergency.ListContacts(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, domain.CodeTripNotFound, "Trip not found")
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// deleteContact handles DELETE /trips/{tripID}/contacts/{contactID}.
func (s *Server) deleteContact(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID, "Valid trip ID is required")
		return
	}

	contactID, ok := pathID(r, "contactID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidContactID, "Valid contact ID is required")
		return
	}

	deleted, err := s.emergency.DeleteContact(r.Context(), tripID, contactID)
	if err != nil {
		writeServiceError(w, err, domain.CodeContactNotFound, "Contact not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Contact deleted successfully",
		"deletedContact": deleted,
	})
}

// raiseAlert handles POST /trips/{tripID}/alerts.
func (s *Server) raiseAlert(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID, "Valid trip ID is required")
		return
	}

	var req raiseAlertRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidAlert, validationMessage(err))
		return
	}

	alert := domain.EmergencyAlert{
		TripID:       &tripID,
		AlertType:    req.AlertType,
		LocationLat:  req.LocationLat,
		LocationLng:  req.LocationLng,
		LocationName: req.LocationName,
		Message:      req.Message,
		SentTo:       req.SentTo,
	}

	created, err := s.emergency.RaiseAlert(r.Context(), alert)
	if err != nil {
		writeServiceError(w, err, domain.CodeTripNotFound, "Trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// listAlerts handles GET /trips/{tripID}/alerts.
func (s *Server) listAlerts(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID, "Valid trip ID is required")
		return
	}

	alerts, err := s.emergency.ListAlerts(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, domain.CodeTripNotFound, "Trip not found")
		return
	}
	writeJSON(w, http.StatusOK, alerts)
}
