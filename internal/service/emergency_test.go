package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
	"github.com/jsandoval/travel-companion/backend/internal/repo"
	"github.com/jsandoval/travel-companion/backend/internal/service"
)

// mockContactRepo is a hand-written test double for repo.ContactRepo.
type mockContactRepo struct {
	create       func(ctx context.Context, contact domain.EmergencyContact) (domain.EmergencyContact, error)
	getByID      func(ctx context.Context, id int64) (domain.EmergencyContact, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.EmergencyContact, error)
	delete       func(ctx context.Context, id int64) (domain.EmergencyContact, error)
}

func (m *mockContactRepo) Create(ctx context.Context, contact domain.EmergencyContact) (domain.EmergencyContact, error) {
	return m.create(ctx, contact)
}
func (m *mockContactRepo) GetByID(ctx context.Context, id int64) (domain.EmergencyContact, error) {
	return m.getByID(ctx, id)
}
func (m *mockContactRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.EmergencyContact, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockContactRepo) Delete(ctx context.Context, id int64) (domain.EmergencyContact, error) {
	return m.delete(ctx, id)
}

var _ repo.ContactRepo = (*mockContactRepo)(nil)

// mockAlertRepo is a hand-written test double for repo.AlertRepo.
type mockAlertRepo struct {
	create       func(ctx context.Context, alert domain.EmergencyAlert) (domain.EmergencyAlert, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.EmergencyAlert, error)
}

func (m *mockAlertRepo) Create(ctx context.Context, alert domain.EmergencyAlert) (domain.EmergencyAlert, error) {
	return m.create(ctx, alert)
}
func (m *mockAlertRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.EmergencyAlert, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.AlertRepo = (*mockAlertRepo)(nil)

// existingTripRepo returns a mockTripRepo whose GetByID always succeeds.
func existingTripRepo() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id int64) (domain.Trip, error) {
			return domain.Trip{ID: id}, nil
		},
	}
}

// missingTripRepo returns a mockTripRepo whose GetByID always misses.
func missingTripRepo() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, _ int64) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
}

// ---- Contacts --------------------------------------------------------------

func TestEmergencyService_AddContact_OK(t *testing.T) {
	svc := service.NewEmergencyService(existingTripRepo(), &mockContactRepo{
		create: func(_ context.Context, c domain.EmergencyContact) (domain.EmergencyContact, error) {
			c.ID = 1
			return c, nil
		},
	}, &mockAlertRepo{})

	got, err := svc.AddContact(context.Background(), domain.EmergencyContact{
		TripID: 3, Name: "Ana", Phone: "+34111222333", Email: "ana@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestEmergencyService_AddContact_TripNotFound(t *testing.T) {
	svc := service.NewEmergencyService(missingTripRepo(), &mockContactRepo{
		create: func(_ context.Context, _ domain.EmergencyContact) (domain.EmergencyContact, error) {
			t.Fatal("no contact may be written for a missing trip")
			return domain.EmergencyContact{}, nil
		},
	}, &mockAlertRepo{})

	_, err := svc.AddContact(context.Background(), domain.EmergencyContact{TripID: 999})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmergencyService_DeleteContact_WrongTrip(t *testing.T) {
	svc := service.NewEmergencyService(existingTripRepo(), &mockContactRepo{
		getByID: func(_ context.Context, _ int64) (domain.EmergencyContact, error) {
			return domain.EmergencyContact{ID: 5, TripID: 2}, nil
		},
		delete: func(_ context.Context, _ int64) (domain.EmergencyContact, error) {
			t.Fatal("a contact addressed through the wrong trip must not be deleted")
			return domain.EmergencyContact{}, nil
		},
	}, &mockAlertRepo{})

	_, err := svc.DeleteContact(context.Background(), 1, 5)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.CodeContactNotInTrip, domain.CodeOf(err))
}

func TestEmergencyService_DeleteContact_NotFound(t *testing.T) {
	svc := service.NewEmergencyService(existingTripRepo(), &mockContactRepo{
		getByID: func(_ context.Context, _ int64) (domain.EmergencyContact, error) {
			return domain.EmergencyContact{}, domain.ErrNotFound
		},
	}, &mockAlertRepo{})

	_, err := svc.DeleteContact(context.Background(), 1, 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Alerts ----------------------------------------------------------------

func TestEmergencyService_RaiseAlert_OK(t *testing.T) {
	tripID := int64(3)
	svc := service.NewEmergencyService(existingTripRepo(), &mockContactRepo{}, &mockAlertRepo{
		create: func(_ context.Context, a domain.EmergencyAlert) (domain.EmergencyAlert, error) {
			a.ID = 1
			return a, nil
		},
	})

	got, err := svc.RaiseAlert(context.Background(), domain.EmergencyAlert{
		TripID: &tripID, AlertType: "sos", Message: "need help",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestEmergencyService_RaiseAlert_MissingTripReference(t *testing.T) {
	svc := service.NewEmergencyService(existingTripRepo(), &mockContactRepo{}, &mockAlertRepo{})

	_, err := svc.RaiseAlert(context.Background(), domain.EmergencyAlert{
		AlertType: "sos", Message: "need help",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.CodeInvalidAlert, domain.CodeOf(err))
}

func TestEmergencyService_RaiseAlert_TripNotFound(t *testing.T) {
	tripID := int64(999)
	svc := service.NewEmergencyService(missingTripRepo(), &mockContactRepo{}, &mockAlertRepo{
		create: func(_ context.Context, _ domain.EmergencyAlert) (domain.EmergencyAlert, error) {
			t.Fatal("no alert may be written for a missing trip")
			return domain.EmergencyAlert{}, nil
		},
	})

	_, err := svc.RaiseAlert(context.Background(), domain.EmergencyAlert{
		TripID: &tripID, AlertType: "sos", Message: "need help",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmergencyService_ListAlerts_TripNotFound(t *testing.T) {
	svc := service.NewEmergencyService(missingTripRepo(), &mockContactRepo{}, &mockAlertRepo{})

	_, err := svc.ListAlerts(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
