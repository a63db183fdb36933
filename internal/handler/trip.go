package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// createTripRequest holds the POST /trips body. Route blobs are opaque JSON
// produced by the routing frontend and stored verbatim.
type createTripRequest struct {
	Source                 string          `json:"source" validate:"required,notblank"`
	Destination            string          `json:"destination" validate:"required,notblank"`
	SourceCoordinates      *string         `json:"sourceCoordinates"`
	DestinationCoordinates *string         `json:"destinationCoordinates"`
	TravelDate             string          `json:"travelDate" validate:"required,notblank"`
	TravelTime             string          `json:"travelTime" validate:"required,notblank"`
	TransportMode          string          `json:"transportMode" validate:"required,notblank"`
	OptimizationMode       string          `json:"optimizationMode" validate:"required,notblank"`
	RouteData              json.RawMessage `json:"routeData"`
	RouteGeometry          json.RawMessage `json:"routeGeometry"`
	MatchRadius            int             `json:"matchRadius" validate:"omitempty,min=1"`
}

// createTrip handles POST /trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, domain.CodeMissingRequiredFields, validationMessage(err))
		return
	}

	trip := domain.Trip{
		Source:                 req.Source,
		Destination:            req.Destination,
		SourceCoordinates:      req.SourceCoordinates,
		DestinationCoordinates: req.DestinationCoordinates,
		TravelDate:             req.TravelDate,
		TravelTime:             req.TravelTime,
		TransportMode:          req.TransportMode,
		OptimizationMode:       req.OptimizationMode,
		RouteData:              req.RouteData,
		RouteGeometry:          req.RouteGeometry,
		MatchRadius:            req.MatchRadius,
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// listTrips handles GET /trips.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// getTrip handles GET /trips/{tripID}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID, "Valid trip ID is required")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, domain.CodeTripNotFound, "Trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// deleteTrip handles DELETE /trips/{tripID}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "tripID")
	if !ok {
		writeError(w, http.StatusBadRequest, domain.CodeInvalidTripID, "Valid trip ID is required")
		return
	}

	deleted, err := s.trips.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, domain.CodeTripNotFound, "Trip not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Trip deleted successfully",
		"deletedTrip": deleted,
	})
}
