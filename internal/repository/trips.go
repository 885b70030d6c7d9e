package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/store"
)

func (r *Repository) Trips(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	sorted, err := r.store.Find(ctx, store.CollectionTrips, map[string]any{},
		&store.Sort{Field: "createdAt", Desc: true}, &trips)
	if err != nil {
		return nil, err
	}
	if !sorted {
		sortTripsNewestFirst(trips)
	}
	return trips, nil
}

func (r *Repository) TripByID(ctx context.Context, id string) (models.Trip, error) {
	var trips []models.Trip
	if err := r.store.GetAll(ctx, store.CollectionTrips, &trips); err != nil {
		return models.Trip{}, err
	}
	for _, t := range trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trip{}, fmt.Errorf("trip %s: %w", id, models.ErrNotFound)
}

// TripsByDriver returns the driver's trips, most recent first. The backend
// sorts when it can; otherwise the result is sorted here, so both paths
// produce the same ordering.
func (r *Repository) TripsByDriver(ctx context.Context, driverID string) ([]models.Trip, error) {
	var trips []models.Trip
	sorted, err := r.store.Find(ctx, store.CollectionTrips, map[string]any{"driverId": driverID},
		&store.Sort{Field: "createdAt", Desc: true}, &trips)
	if err != nil {
		return nil, err
	}
	if !sorted {
		sortTripsNewestFirst(trips)
	}
	return trips, nil
}

func sortTripsNewestFirst(trips []models.Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
}

func (r *Repository) AddTrip(ctx context.Context, t models.Trip) (models.Trip, error) {
	id, err := r.store.Add(ctx, store.CollectionTrips, t)
	if err != nil {
		return models.Trip{}, err
	}
	t.ID = id
	return t, nil
}

func (r *Repository) UpdateTrip(ctx context.Context, id string, fields map[string]any) error {
	return r.store.Update(ctx, store.CollectionTrips, id, fields)
}

func (r *Repository) DeleteTrip(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionTrips, id)
}
