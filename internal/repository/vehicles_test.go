package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
)

func TestCreateVehicleNormalizesPlate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.CreateVehicle(ctx, models.Vehicle{
		Plate: " ghi-9012 ", Model: "Ducato", Brand: "Fiat", Year: 2022, Available: true,
	})
	if err != nil {
		t.Fatalf("CreateVehicle: %v", err)
	}
	if created.Plate != "GHI-9012" {
		t.Fatalf("expected normalized plate, got %q", created.Plate)
	}
}

func TestCreateVehicleRejectsDuplicatePlateCaseInsensitive(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	before, err := repo.Vehicles(ctx)
	if err != nil {
		t.Fatalf("Vehicles: %v", err)
	}

	// ABC-1234 is part of the seed data.
	_, err = repo.CreateVehicle(ctx, models.Vehicle{
		Plate: "abc-1234", Model: "Kombi", Brand: "Volkswagen", Year: 2019, Available: true,
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	after, err := repo.Vehicles(ctx)
	if err != nil {
		t.Fatalf("Vehicles: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("failed create must not mutate the collection: %d -> %d", len(before), len(after))
	}
}

func TestCreateVehicleYearRange(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	for _, year := range []int{1899, time.Now().Year() + 2} {
		_, err := repo.CreateVehicle(ctx, models.Vehicle{
			Plate: "JKL-3456", Model: "Master", Brand: "Renault", Year: year, Available: true,
		})
		if !models.IsValidation(err) {
			t.Errorf("year %d: expected ValidationError, got %v", year, err)
		}
	}
	// Boundary years are accepted.
	if _, err := repo.CreateVehicle(ctx, models.Vehicle{
		Plate: "JKL-3456", Model: "Master", Brand: "Renault", Year: 1900, Available: true,
	}); err != nil {
		t.Fatalf("year 1900: %v", err)
	}
	if _, err := repo.CreateVehicle(ctx, models.Vehicle{
		Plate: "MNO-7890", Model: "Master", Brand: "Renault", Year: time.Now().Year() + 1, Available: true,
	}); err != nil {
		t.Fatalf("next year: %v", err)
	}
}

func TestAvailableVehicles(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	if err := repo.UpdateVehicle(ctx, "2", map[string]any{"available": false}); err != nil {
		t.Fatalf("UpdateVehicle: %v", err)
	}

	available, err := repo.AvailableVehicles(ctx)
	if err != nil {
		t.Fatalf("AvailableVehicles: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("expected 1 available vehicle, got %d", len(available))
	}
	if available[0].ID != "1" {
		t.Fatalf("expected vehicle 1, got %s", available[0].ID)
	}
}
