package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
)

// EmergencyService implements business logic for emergency contacts and
// alerts. Both are scoped to a trip, so every operation starts with a parent
// existence check. Alerts are recorded only — delivery to the contacts is the
// caller's problem.
type EmergencyService struct {
	trips    repo.TripRepo
	contacts repo.ContactRepo
	alerts   repo.AlertRepo
}

// NewEmergencyService constructs an EmergencyService backed by the provided repos.
func NewEmergencyService(trips repo.TripRepo, contacts repo.ContactRepo, alerts repo.AlertRepo) *EmergencyService {
	return &EmergencyService{trips: trips, contacts: contacts, alerts: alerts}
}

// AddContact verifies the trip exists, then inserts the contact.
// Returns domain.ErrNotFound — and persists nothing — when the trip is absent.
func (s *EmergencyService) AddContact(ctx context.Context, contact domain.EmergencyContact) (domain.EmergencyContact, error) {
	if _, err := s.trips.GetByID(ctx, contact.TripID); err != nil {
		return domain.EmergencyContact{}, fmt.Errorf("service.EmergencyService.AddContact: %w", err)
	}

	result, err := s.contacts.Create(ctx, contact)
	if err != nil {
		return domain.EmergencyContact{}, fmt.Errorf("service.EmergencyService.AddContact: %w", err)
	}
	return result, nil
}

// ListContacts returns all contacts registered for a trip.
// Returns domain.ErrNotFound when the trip does not exist.
func (s *EmergencyService) ListContacts(ctx context.Context, tripID int64) ([]domain.EmergencyContact, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.EmergencyService.ListContacts: %w", err)
	}

	contacts, err := s.contacts.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.EmergencyService.ListContacts: %w", err)
	}
	return contacts, nil
}

// DeleteContact removes a contact addressed through its trip, mirroring the
// message-deletion contract: existence first, then ownership, then delete.
func (s *EmergencyService) DeleteContact(ctx context.Context, tripID, contactID int64) (domain.EmergencyContact, error) {
	contact, err := s.contacts.GetByID(ctx, contactID)
	if err != nil {
		return domain.EmergencyContact{}, fmt.Errorf("service.EmergencyService.DeleteContact: %w", err)
	}

	if contact.TripID != tripID {
		return domain.EmergencyContact{}, domain.Invalid(domain.CodeContactNotInTrip,
			"Contact does not belong to this trip")
	}

	deleted, err := s.contacts.Delete(ctx, contactID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.EmergencyContact{}, domain.Internal(domain.CodeDeleteFailed, "Failed to delete contact")
		}
		return domain.EmergencyContact{}, fmt.Errorf("service.EmergencyService.DeleteContact: %w", err)
	}
	return deleted, nil
}

// RaiseAlert verifies the trip exists, then records the alert against it.
// Returns domain.ErrNotFound — and persists nothing — when the trip is absent.
func (s *EmergencyService) RaiseAlert(ctx context.Context, alert domain.EmergencyAlert) (domain.EmergencyAlert, error) {
	if alert.TripID == nil {
		return domain.EmergencyAlert{}, domain.Invalid(domain.CodeInvalidAlert, "Alert must reference a trip")
	}
	if _, err := s.trips.GetByID(ctx, *alert.TripID); err != nil {
		return domain.EmergencyAlert{}, fmt.Errorf("service.EmergencyService.RaiseAlert: %w", err)
	}

	result, err := s.alerts.Create(ctx, alert)
	if err != nil {
		return domain.EmergencyAlert{}, fmt.Errorf("service.EmergencyService.RaiseAlert: %w", err)
	}
	return result, nil
}

// ListAlerts returns a trip's recorded alerts, most recent first.
// Returns domain.ErrNotFound when the trip does not exist.
func (s *EmergencyService) ListAlerts(ctx context.Context, tripID int64) ([]domain.EmergencyAlert, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.EmergencyService.ListAlerts: %w", err)
	}

	alerts, err := s.alerts.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.EmergencyService.ListAlerts: %w", err)
	}
	return alerts, nil
}
