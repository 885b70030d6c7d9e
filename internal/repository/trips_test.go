package repository

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/store"
)

// sortingStore simulates a backend with a native createdAt sort index, so the
// server-sorted and client-sorted paths can be compared.
type sortingStore struct {
	*store.MemoryStore
}

func (s *sortingStore) Find(ctx context.Context, collection string, filter map[string]any, sortSpec *store.Sort, out any) (bool, error) {
	if _, err := s.MemoryStore.Find(ctx, collection, filter, nil, out); err != nil {
		return false, err
	}
	if sortSpec == nil {
		return true, nil
	}
	trips, ok := out.(*[]models.Trip)
	if !ok || sortSpec.Field != "createdAt" {
		return false, nil
	}
	sort.SliceStable(*trips, func(i, j int) bool {
		if sortSpec.Desc {
			return (*trips)[i].CreatedAt.After((*trips)[j].CreatedAt)
		}
		return (*trips)[i].CreatedAt.Before((*trips)[j].CreatedAt)
	})
	return true, nil
}

func seedTrips(t *testing.T, repo *Repository) {
	t.Helper()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	// Insertion order deliberately does not match creation time.
	trips := []models.Trip{
		{DriverID: "1", VehicleID: "1", City: "Santos", Date: "2025-03-12", Time: "08:00", Status: models.StatusScheduled, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
		{DriverID: "2", VehicleID: "2", City: "Campinas", Date: "2025-03-12", Time: "09:00", Status: models.StatusScheduled, CreatedAt: base.Add(3 * time.Hour), UpdatedAt: base.Add(3 * time.Hour)},
		{DriverID: "1", VehicleID: "1", City: "Guarulhos", Date: "2025-03-13", Time: "10:00", Status: models.StatusScheduled, CreatedAt: base, UpdatedAt: base},
		{DriverID: "1", VehicleID: "2", City: "Osasco", Date: "2025-03-14", Time: "07:30", Status: models.StatusScheduled, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)},
	}
	for _, trip := range trips {
		if _, err := repo.AddTrip(context.Background(), trip); err != nil {
			t.Fatalf("AddTrip: %v", err)
		}
	}
}

func TestTripsByDriverSortedNewestFirst(t *testing.T) {
	clientSorted := New(store.NewMemoryStore())
	serverSorted := New(&sortingStore{store.NewMemoryStore()})
	seedTrips(t, clientSorted)
	seedTrips(t, serverSorted)

	ctx := context.Background()
	for name, repo := range map[string]*Repository{"client-sorted": clientSorted, "server-sorted": serverSorted} {
		trips, err := repo.TripsByDriver(ctx, "1")
		if err != nil {
			t.Fatalf("%s: TripsByDriver: %v", name, err)
		}
		if len(trips) != 3 {
			t.Fatalf("%s: expected 3 trips for driver 1, got %d", name, len(trips))
		}
		for i := 1; i < len(trips); i++ {
			if trips[i].CreatedAt.After(trips[i-1].CreatedAt) {
				t.Errorf("%s: trips out of order at %d", name, i)
			}
		}
		for _, trip := range trips {
			if trip.DriverID != "1" {
				t.Errorf("%s: got a trip for driver %s", name, trip.DriverID)
			}
		}
	}

	// Both paths must yield the same ordering for the same input.
	a, _ := clientSorted.TripsByDriver(ctx, "1")
	b, _ := serverSorted.TripsByDriver(ctx, "1")
	for i := range a {
		if !a[i].CreatedAt.Equal(b[i].CreatedAt) || a[i].City != b[i].City {
			t.Fatalf("sorted results diverge at %d: %v vs %v", i, a[i].City, b[i].City)
		}
	}
}

func TestTripsByDriverEmpty(t *testing.T) {
	repo := newTestRepo()
	trips, err := repo.TripsByDriver(context.Background(), "2")
	if err != nil {
		t.Fatalf("TripsByDriver: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected no trips, got %d", len(trips))
	}
}
