package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/repository"
)

// TripService creates, transitions and deletes trips. It is purely reactive:
// there are no timers and no cascading changes when a referenced vehicle or
// driver changes later.
type TripService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewTripService(repo *repository.Repository) *TripService {
	return &TripService{repo: repo, now: time.Now}
}

type CreateTripInput struct {
	DriverID   string   `json:"driverId"`
	VehicleID  string   `json:"vehicleId"`
	City       string   `json:"city"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	PatientIDs []string `json:"patientIds"`
	Notes      *string  `json:"notes,omitempty"`
}

// Create validates the referenced driver and vehicle, snapshots the patient
// records into the trip and schedules it. Later edits to a patient do not
// touch trips already created.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (models.Trip, error) {
	if in.City == "" {
		return models.Trip{}, models.NewValidationError("city", "city is required")
	}
	if in.Date == "" {
		return models.Trip{}, models.NewValidationError("date", "date is required")
	}
	if in.Time == "" {
		return models.Trip{}, models.NewValidationError("time", "time is required")
	}
	if len(in.PatientIDs) == 0 {
		return models.Trip{}, models.NewValidationError("patientIds", "at least one patient is required")
	}

	driver, err := s.repo.UserByID(ctx, in.DriverID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Trip{}, models.NewValidationError("driverId", "driver does not exist")
		}
		return models.Trip{}, err
	}
	if driver.Role != models.RoleDriver {
		return models.Trip{}, models.NewValidationError("driverId", "user is not a driver")
	}
	if _, err := s.repo.VehicleByID(ctx, in.VehicleID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Trip{}, models.NewValidationError("vehicleId", "vehicle does not exist")
		}
		return models.Trip{}, err
	}
	patients, err := s.repo.PatientsByIDs(ctx, in.PatientIDs)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Trip{}, models.NewValidationError("patientIds", "patient does not exist")
		}
		return models.Trip{}, err
	}

	now := s.now()
	trip := models.Trip{
		DriverID:  in.DriverID,
		VehicleID: in.VehicleID,
		City:      in.City,
		Date:      in.Date,
		Time:      in.Time,
		Status:    models.StatusScheduled,
		Patients:  patients,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.AddTrip(ctx, trip)
}

// Transition moves a trip to the next status. An illegal step leaves the
// trip untouched, including its updatedAt.
func (s *TripService) Transition(ctx context.Context, id string, next models.TripStatus) (models.Trip, error) {
	if !next.Valid() {
		return models.Trip{}, models.NewValidationError("status", "unknown status")
	}
	trip, err := s.repo.TripByID(ctx, id)
	if err != nil {
		return models.Trip{}, err
	}
	if !trip.Status.CanTransitionTo(next) {
		return models.Trip{}, models.NewValidationError("status",
			fmt.Sprintf("cannot move a trip from %s to %s", trip.Status, next))
	}
	now := s.now()
	err = s.repo.UpdateTrip(ctx, id, map[string]any{
		"status":    next,
		"updatedAt": now,
	})
	if err != nil {
		return models.Trip{}, err
	}
	trip.Status = next
	trip.UpdatedAt = now
	return trip, nil
}

// Delete removes a trip in any state. Deletion is an administrative
// override, not a lifecycle transition, so there is no status restriction.
func (s *TripService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteTrip(ctx, id)
}
