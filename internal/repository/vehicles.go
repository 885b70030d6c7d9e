package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/store"
)

func (r *Repository) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.store.GetAll(ctx, store.CollectionVehicles, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *Repository) VehicleByID(ctx context.Context, id string) (models.Vehicle, error) {
	vehicles, err := r.Vehicles(ctx)
	if err != nil {
		return models.Vehicle{}, err
	}
	for _, v := range vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, fmt.Errorf("vehicle %s: %w", id, models.ErrNotFound)
}

// AvailableVehicles lists the vehicles an admin can assign to a new trip.
func (r *Repository) AvailableVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	_, err := r.store.Find(ctx, store.CollectionVehicles, map[string]any{"available": true}, nil, &vehicles)
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *Repository) CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	if v.Plate == "" {
		return models.Vehicle{}, models.NewValidationError("plate", "plate is required")
	}
	if v.Model == "" {
		return models.Vehicle{}, models.NewValidationError("model", "model is required")
	}
	if v.Brand == "" {
		return models.Vehicle{}, models.NewValidationError("brand", "brand is required")
	}
	if err := validYear(v.Year); err != nil {
		return models.Vehicle{}, err
	}
	if err := r.checkPlateUnique(ctx, v.Plate, ""); err != nil {
		return models.Vehicle{}, err
	}
	id, err := r.store.Add(ctx, store.CollectionVehicles, v)
	if err != nil {
		return models.Vehicle{}, err
	}
	v.ID = id
	return v, nil
}

func (r *Repository) UpdateVehicle(ctx context.Context, id string, fields map[string]any) error {
	if plate, ok := fields["plate"].(string); ok {
		plate = strings.ToUpper(strings.TrimSpace(plate))
		if plate == "" {
			return models.NewValidationError("plate", "plate is required")
		}
		if err := r.checkPlateUnique(ctx, plate, id); err != nil {
			return err
		}
		fields["plate"] = plate
	}
	if year, ok := fields["year"].(int); ok {
		if err := validYear(year); err != nil {
			return err
		}
	}
	return r.store.Update(ctx, store.CollectionVehicles, id, fields)
}

func (r *Repository) DeleteVehicle(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionVehicles, id)
}

func validYear(year int) error {
	if year < 1900 || year > time.Now().Year()+1 {
		return models.NewValidationError("year", "invalid vehicle year")
	}
	return nil
}

func (r *Repository) checkPlateUnique(ctx context.Context, plate, selfID string) error {
	vehicles, err := r.Vehicles(ctx)
	if err != nil {
		return err
	}
	for _, v := range vehicles {
		if v.ID != selfID && strings.EqualFold(v.Plate, plate) {
			return models.NewConflictError("plate", "this plate is already registered")
		}
	}
	return nil
}
