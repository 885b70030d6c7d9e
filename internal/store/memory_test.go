package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
)

func TestMemoryStoreSeedsOnFirstRead(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var users []models.User
	if err := s.GetAll(ctx, CollectionUsers, &users); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(users))
	}
	admins := 0
	for _, u := range users {
		if u.Email == DefaultAdminEmail {
			admins++
			if u.Password != DefaultAdminPassword {
				t.Errorf("seed admin password = %q", u.Password)
			}
		}
	}
	if admins != 1 {
		t.Fatalf("expected exactly one seeded admin, got %d", admins)
	}

	// The seed is persisted, not regenerated: clearing sticks.
	if err := s.SetAll(ctx, CollectionUsers, []models.User{}); err != nil {
		t.Fatalf("SetAll: %v", err)
	}
	users = nil
	if err := s.GetAll(ctx, CollectionUsers, &users); err != nil {
		t.Fatalf("GetAll after clear: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected cleared collection to stay empty, got %d users", len(users))
	}
}

func TestMemoryStoreTripsSeedEmpty(t *testing.T) {
	s := NewMemoryStore()
	var trips []models.Trip
	if err := s.GetAll(context.Background(), CollectionTrips, &trips); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected no seeded trips, got %d", len(trips))
	}
}

func TestMemoryStoreAddAssignsID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Add(ctx, CollectionPatients, models.Patient{Name: "Novo", Address: "Rua A", Phone: "(11) 55555-5555", City: "Santos"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	id2, err := s.Add(ctx, CollectionPatients, models.Patient{Name: "Outro", Address: "Rua B", Phone: "(11) 44444-4444", City: "Santos"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == id2 {
		t.Fatal("expected distinct generated ids")
	}

	var patients []models.Patient
	if err := s.GetAll(ctx, CollectionPatients, &patients); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	// 2 seeded + 2 added
	if len(patients) != 4 {
		t.Fatalf("expected 4 patients, got %d", len(patients))
	}
}

func TestMemoryStoreUpdateAndDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Update(ctx, CollectionVehicles, "1", map[string]any{"available": false}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	var vehicles []models.Vehicle
	if err := s.GetAll(ctx, CollectionVehicles, &vehicles); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	for _, v := range vehicles {
		if v.ID == "1" && v.Available {
			t.Error("expected vehicle 1 to be unavailable after update")
		}
	}

	if err := s.Update(ctx, CollectionVehicles, "missing", map[string]any{"available": false}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating missing id, got %v", err)
	}

	if err := s.Delete(ctx, CollectionVehicles, "1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, CollectionVehicles, "1"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestMemoryStoreFindFiltersWithoutSorting(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Update(ctx, CollectionVehicles, "2", map[string]any{"available": false}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var available []models.Vehicle
	sorted, err := s.Find(ctx, CollectionVehicles, map[string]any{"available": true}, &Sort{Field: "year", Desc: true}, &available)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if sorted {
		t.Error("memory store must report results as unsorted")
	}
	if len(available) != 1 || available[0].ID != "1" {
		t.Fatalf("expected only vehicle 1, got %+v", available)
	}
}

// Update rewrites documents in place, so reads must never decode outside the
// lock. Run with -race.
func TestMemoryStoreConcurrentReadWrite(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var users []models.User
	if err := s.GetAll(ctx, CollectionUsers, &users); err != nil {
		t.Fatalf("GetAll: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			var read []models.User
			if err := s.GetAll(ctx, CollectionUsers, &read); err != nil {
				t.Errorf("GetAll under concurrent updates: %v", err)
				return
			}
			var drivers []models.User
			if _, err := s.Find(ctx, CollectionUsers, map[string]any{"role": models.RoleDriver}, nil, &drivers); err != nil {
				t.Errorf("Find under concurrent updates: %v", err)
				return
			}
		}
	}()
	for i := 0; i < 500; i++ {
		if err := s.Update(ctx, CollectionUsers, "1", map[string]any{"name": fmt.Sprintf("João Silva %d", i)}); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	wg.Wait()
}

func TestMemoryStoreSessionSlot(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var user models.User
	ok, err := s.GetSession(ctx, &user)
	if err != nil || ok {
		t.Fatalf("expected empty session, got ok=%v err=%v", ok, err)
	}

	if err := s.SetSession(ctx, models.User{ID: "admin", Name: "Damir Silva", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	ok, err = s.GetSession(ctx, &user)
	if err != nil || !ok {
		t.Fatalf("expected session, got ok=%v err=%v", ok, err)
	}
	if user.ID != "admin" || user.Role != models.RoleAdmin {
		t.Fatalf("unexpected session user: %+v", user)
	}

	if err := s.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	ok, _ = s.GetSession(ctx, &user)
	if ok {
		t.Fatal("expected session to be cleared")
	}
	// Clearing twice is fine.
	if err := s.ClearSession(ctx); err != nil {
		t.Fatalf("ClearSession twice: %v", err)
	}
}
