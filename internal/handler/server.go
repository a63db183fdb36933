// Package handler implements the HTTP layer for the Travel Companion API.
// Handlers decode requests, validate them in the order the wire contract
// specifies, delegate to the services, and encode JSON responses. Methods are
// split into resource-specific files but all share the same Server struct.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/spec"
)

// GroupServicer defines the group operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type GroupServicer interface {
	Create(ctx context.Context, name string, tripID *int64) (domain.Group, error)
	List(ctx context.Context) ([]domain.GroupSummary, error)
	Get(ctx context.Context, id int64) (domain.GroupDetail, error)
}

// MembershipServicer defines the shared invite/join operation.
type MembershipServicer interface {
	AddMember(ctx context.Context, groupID int64, name string, email *string) (domain.GroupMember, error)
}

// MessageServicer defines the group-message operations.
type MessageServicer interface {
	ListByGroup(ctx context.Context, groupID int64) ([]domain.Message, error)
	Post(ctx context.Context, groupID int64, senderName, body string) (domain.Message, error)
	Delete(ctx context.Context, groupID, messageID int64) (domain.Message, error)
}

// TripServicer defines the trip operations.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	Delete(ctx context.Context, id int64) (domain.Trip, error)
}

// EmergencyServicer defines the emergency contact and alert operations.
type EmergencyServicer interface {
	AddContact(ctx context.Context, contact domain.EmergencyContact) (domain.EmergencyContact, error)
	ListContacts(ctx context.Context, tripID int64) ([]domain.EmergencyContact, error)
	DeleteContact(ctx context.Context, tripID, contactID int64) (domain.EmergencyContact, error)
	RaiseAlert(ctx context.Context, alert domain.EmergencyAlert) (domain.EmergencyAlert, error)
	ListAlerts(ctx context.Context, tripID int64) ([]domain.EmergencyAlert, error)
}

// Server holds the service dependencies for all API endpoints.
// Wire it in main.go via NewServer(...).Routes().
type Server struct {
	groups     GroupServicer
	membership MembershipServicer
	messages   MessageServicer
	trips      TripServicer
	emergency  EmergencyServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(groups GroupServicer, membership MembershipServicer, messages MessageServicer,
	trips TripServicer, emergency EmergencyServicer) *Server {
	return &Server{
		groups:     groups,
		membership: membership,
		messages:   messages,
		trips:      trips,
		emergency:  emergency,
	}
}

// Routes builds the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	r.Route("/groups", func(r chi.Router) {
		r.Post("/", s.createGroup)
		r.Get("/", s.listGroups)
		r.Route("/{groupID}", func(r chi.Router) {
			r.Get("/", s.getGroup)
			r.Post("/invite", s.inviteMember)
			r.Post("/join", s.joinGroup)
			r.Get("/messages", s.listMessages)
			r.Post("/messages", s.postMessage)
			r.Delete("/messages/{messageID}", s.deleteMessage)
		})
	})

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.createTrip)
		r.Get("/", s.listTrips)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Delete("/", s.deleteTrip)
			r.Post("/contacts", s.addContact)
			r.Get("/contacts", s.listContacts)
			r.Delete("/contacts/{contactID}", s.deleteContact)
			r.Post("/alerts", s.raiseAlert)
			r.Get("/alerts", s.listAlerts)
		})
	})

	return r
}

// getHealth handles GET /healthz.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getOpenAPI serves the embedded OpenAPI document. Serving it from the
// binary means the spec and the running code are always in sync.
func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
